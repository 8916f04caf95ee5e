package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Paul-Briman/lumina-photography/internal/repository"
	"github.com/Paul-Briman/lumina-photography/internal/service"
	"github.com/Paul-Briman/lumina-photography/internal/testutils"

	"github.com/gin-gonic/gin"
)

type noopMailer struct{}

func (noopMailer) SendPasswordResetEmail(to, resetURL string) error { return nil }

// setupHandler builds a handler over a fresh in-memory database together with
// a bare engine; tests register just the routes they exercise.
func setupHandler(t *testing.T) (*Handler, *service.AppService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	svc := service.NewAppService(repository.NewRepositories(gdb), noopMailer{})
	h := NewHandler(svc)

	r := gin.New()
	return h, svc, r
}

// asOwner injects an authenticated identity the way JWTAuth would.
func asOwner(ownerID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("id", ownerID)
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerOwner(t *testing.T, svc *service.AppService, email string) uint {
	t.Helper()
	_, photographer, err := svc.Register(email, "Studio "+email, "password123")
	if err != nil {
		t.Fatalf("Register %s failed: %v", email, err)
	}
	return photographer.ID
}
