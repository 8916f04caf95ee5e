package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestGetSharedGallery(t *testing.T) {
	h, svc, r := setupHandler(t)
	owner := registerOwner(t, svc, "owner@example.com")

	gallery, err := svc.CreateGallery(owner, "Summer Wedding 2024", "Alice & Bob")
	if err != nil {
		t.Fatalf("CreateGallery failed: %v", err)
	}
	if _, err := svc.AddPhotoMetadata(owner, gallery.ID, "a.jpg", "https://cdn.example.com/a.jpg", 10); err != nil {
		t.Fatalf("AddPhotoMetadata failed: %v", err)
	}

	r.GET("/api/share/:token", h.GetSharedGallery)

	w := doJSON(t, r, "GET", "/api/share/"+gallery.ShareToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// The PIN itself never ships to viewers, only the fact that one exists.
	if strings.Contains(w.Body.String(), gallery.DownloadPin) {
		t.Fatalf("download PIN leaked in public response: %s", w.Body.String())
	}
	var resp struct {
		Title  string `json:"title"`
		HasPin bool   `json:"hasPin"`
		Photos []struct {
			Filename string `json:"filename"`
		} `json:"photos"`
	}
	decodeBody(t, w, &resp)
	if resp.Title != "Summer Wedding 2024" {
		t.Errorf("unexpected title %q", resp.Title)
	}
	if !resp.HasPin {
		t.Error("expected hasPin true")
	}
	if len(resp.Photos) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(resp.Photos))
	}

	w = doJSON(t, r, "GET", "/api/share/unknown-token", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestGetSharedGalleryEmptyPhotos(t *testing.T) {
	h, svc, r := setupHandler(t)
	owner := registerOwner(t, svc, "owner@example.com")

	gallery, err := svc.CreateGallery(owner, "Empty Shoot", "Alice")
	if err != nil {
		t.Fatalf("CreateGallery failed: %v", err)
	}

	r.GET("/api/share/:token", h.GetSharedGallery)

	w := doJSON(t, r, "GET", "/api/share/"+gallery.ShareToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	// An empty gallery serializes photos as [], not null.
	if !strings.Contains(w.Body.String(), `"photos":[]`) {
		t.Fatalf("expected empty photos array, body=%s", w.Body.String())
	}
}

func TestVerifyDownloadPinHandler(t *testing.T) {
	h, svc, r := setupHandler(t)
	owner := registerOwner(t, svc, "owner@example.com")

	gallery, err := svc.CreateGallery(owner, "Summer Wedding 2024", "Alice")
	if err != nil {
		t.Fatalf("CreateGallery failed: %v", err)
	}

	r.POST("/api/share/:token/verify-pin", h.VerifyDownloadPin)

	path := "/api/share/" + gallery.ShareToken + "/verify-pin"
	w := doJSON(t, r, "POST", path, map[string]interface{}{"pin": gallery.DownloadPin})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Valid bool `json:"valid"`
	}
	decodeBody(t, w, &resp)
	if !resp.Valid {
		t.Error("expected valid true")
	}

	wrong := "0000"
	if wrong == gallery.DownloadPin {
		wrong = "0001"
	}
	w = doJSON(t, r, "POST", path, map[string]interface{}{"pin": wrong})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestDownloadSharedPhotoRedirects(t *testing.T) {
	h, svc, r := setupHandler(t)
	owner := registerOwner(t, svc, "owner@example.com")

	gallery, err := svc.CreateGallery(owner, "Summer Wedding 2024", "Alice")
	if err != nil {
		t.Fatalf("CreateGallery failed: %v", err)
	}
	photo, err := svc.AddPhotoMetadata(owner, gallery.ID, "a.jpg", "https://cdn.example.com/a.jpg", 10)
	if err != nil {
		t.Fatalf("AddPhotoMetadata failed: %v", err)
	}

	r.GET("/api/share/:token/photos/:id/download", h.DownloadSharedPhoto)

	path := fmt.Sprintf("/api/share/%s/photos/%d/download", gallery.ShareToken, photo.ID)

	// Without the PIN the download is refused.
	w := doJSON(t, r, "GET", path, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without PIN, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", path+"?pin="+gallery.DownloadPin, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "https://cdn.example.com/a.jpg" {
		t.Errorf("unexpected redirect target %q", loc)
	}
}
