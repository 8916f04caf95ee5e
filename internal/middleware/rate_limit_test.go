package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Paul-Briman/lumina-photography/internal/testutils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestIPRateLimiterPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2)

	// burst of 2, then refused
	if !limiter.getLimiter("10.0.0.1").Allow() {
		t.Fatal("first request should pass")
	}
	if !limiter.getLimiter("10.0.0.1").Allow() {
		t.Fatal("second request should pass")
	}
	if limiter.getLimiter("10.0.0.1").Allow() {
		t.Fatal("third request should be throttled")
	}

	// another IP has its own bucket
	if !limiter.getLimiter("10.0.0.2").Allow() {
		t.Fatal("fresh IP should pass")
	}
}

func TestAuthRateLimitThrottles(t *testing.T) {
	testutils.SetupConfig(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/auth/login", AuthRateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// defaults: 5 rps with a burst of 10, so 30 rapid calls must trip it
	throttled := false
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		switch w.Code {
		case http.StatusOK:
		case http.StatusTooManyRequests:
			throttled = true
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}
	if !throttled {
		t.Fatal("expected at least one 429")
	}
}
