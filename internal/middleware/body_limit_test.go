package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Paul-Briman/lumina-photography/internal/testutils"

	"github.com/gin-gonic/gin"
)

func TestBodyLimitRejectsHugeBody(t *testing.T) {
	testutils.SetupConfig(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(BodyLimit())
	r.POST("/api/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "request body too large"})
			return
		}
		c.Status(http.StatusOK)
	})

	small := bytes.Repeat([]byte("a"), 1024)
	req := httptest.NewRequest("POST", "/api/echo", bytes.NewReader(small))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("small body: expected 200, got %d", w.Code)
	}

	// default cap is 2MB
	huge := bytes.Repeat([]byte("a"), 3*1024*1024)
	req = httptest.NewRequest("POST", "/api/echo", bytes.NewReader(huge))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("huge body: expected 413, got %d", w.Code)
	}
}

func TestBodyLimitSkipsPhotoRoutes(t *testing.T) {
	testutils.SetupConfig(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(BodyLimit())
	r.POST("/api/galleries/1/photos", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	// 3MB passes on the upload route: the JSON cap does not apply there.
	huge := bytes.Repeat([]byte("a"), 3*1024*1024)
	req := httptest.NewRequest("POST", "/api/galleries/1/photos", bytes.NewReader(huge))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload route: expected 200, got %d", w.Code)
	}
}

func TestUploadBodyLimitContentLength(t *testing.T) {
	testutils.SetupConfig(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/galleries/1/photos", UploadBodyLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// default upload cap is 10MB; an announced 11MB body is refused up front
	req := httptest.NewRequest("POST", "/api/galleries/1/photos", bytes.NewReader([]byte("x")))
	req.ContentLength = 11 * 1024 * 1024
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", w.Code, w.Body.String())
	}
}
