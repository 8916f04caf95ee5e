package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/testutils"
	"github.com/Paul-Briman/lumina-photography/internal/utils"

	"github.com/gin-gonic/gin"
)

func protectedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		id, ok := CurrentPhotographerID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	testutils.SetupConfig(t)
	r := protectedEngine()

	if w := serve(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	testutils.SetupConfig(t)
	r := protectedEngine()

	for _, header := range []string{"Bearer", "Basic abc", "justonetoken"} {
		if w := serve(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	testutils.SetupConfig(t)
	r := protectedEngine()

	if w := serve(r, "Bearer garbage.token.here"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for bad token, got %d body=%s", w.Code, w.Body.String())
	}

	expired, err := utils.GenerateLoginToken(1, "demo@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateLoginToken failed: %v", err)
	}
	if w := serve(r, "Bearer "+expired); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	testutils.SetupConfig(t)
	r := protectedEngine()

	token, err := utils.GenerateLoginToken(7, "demo@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken failed: %v", err)
	}

	w := serve(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}
