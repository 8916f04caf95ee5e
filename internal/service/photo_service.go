package service

import (
	"errors"
	"image"
	"image/jpeg"
	_ "image/png" // registered for thumbnail decoding
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paul-Briman/lumina-photography/internal/common"
	"github.com/Paul-Briman/lumina-photography/internal/config"
	"github.com/Paul-Briman/lumina-photography/internal/model"
	"github.com/Paul-Briman/lumina-photography/internal/utils"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"gorm.io/gorm"
)

const thumbnailMaxEdge = 400

// UploadPhotos stores each file under the upload root and records a photo row
// per file. The stored name is a uuid; the client's original filename is kept
// on the record.
func (s *AppService) UploadPhotos(ownerID, galleryID uint, files []*multipart.FileHeader) ([]model.Photo, error) {
	gallery, err := s.ownedGallery(ownerID, galleryID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, common.NewValidationError("No files uploaded")
	}

	created := make([]model.Photo, 0, len(files))
	for _, file := range files {
		photo, err := s.savePhotoFile(gallery.ID, file)
		if err != nil {
			return nil, err
		}
		if err := s.repos.Photos.Create(photo); err != nil {
			s.removePhotoFiles(photo)
			return nil, common.NewInternalError("could not record uploaded photo")
		}
		created = append(created, *photo)
	}
	return created, nil
}

// AddPhotoMetadata records a photo whose binary was uploaded straight to the
// external image host (the direct-to-CDN flow).
func (s *AppService) AddPhotoMetadata(ownerID, galleryID uint, filename, storagePath string, size int64) (*model.Photo, error) {
	gallery, err := s.ownedGallery(ownerID, galleryID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(filename) == "" {
		return nil, common.NewValidationError("filename is required")
	}
	if !strings.HasPrefix(storagePath, "http://") && !strings.HasPrefix(storagePath, "https://") {
		return nil, common.NewValidationError("storagePath must be an http(s) URL")
	}
	if size < 0 {
		return nil, common.NewValidationError("size must not be negative")
	}

	photo := &model.Photo{
		GalleryID:   gallery.ID,
		Filename:    filename,
		StoragePath: storagePath,
		Size:        size,
	}
	if err := s.repos.Photos.Create(photo); err != nil {
		return nil, common.NewInternalError("could not record photo")
	}
	return photo, nil
}

// ReplacePhoto swaps the binary behind an existing photo row. The row id is
// preserved, so cover references keep pointing at the same photo.
func (s *AppService) ReplacePhoto(ownerID, photoID uint, file *multipart.FileHeader) (*model.Photo, error) {
	photo, err := s.ownedPhoto(ownerID, photoID)
	if err != nil {
		return nil, err
	}

	replacement, err := s.savePhotoFile(photo.GalleryID, file)
	if err != nil {
		return nil, err
	}

	old := *photo
	photo.Filename = replacement.Filename
	photo.StoragePath = replacement.StoragePath
	photo.ThumbnailPath = replacement.ThumbnailPath
	photo.Size = replacement.Size
	if err := s.repos.Photos.Save(photo); err != nil {
		s.removePhotoFiles(replacement)
		return nil, common.NewInternalError("could not replace photo")
	}

	s.removePhotoFiles(&old)
	return photo, nil
}

// DeletePhoto removes the row (clearing a matching cover reference in the
// same transaction) and then the stored files.
func (s *AppService) DeletePhoto(ownerID, photoID uint) error {
	photo, err := s.ownedPhoto(ownerID, photoID)
	if err != nil {
		return err
	}

	if err := s.repos.Photos.DeleteAndClearCover(photo); err != nil {
		return common.NewInternalError("could not delete photo")
	}

	s.removePhotoFiles(photo)
	return nil
}

// ownedPhoto resolves a photo and walks the ownership chain through its
// gallery.
func (s *AppService) ownedPhoto(ownerID, photoID uint) (*model.Photo, error) {
	photo, err := s.repos.Photos.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Photo not found")
		}
		return nil, common.NewInternalError("could not load photo")
	}

	gallery, err := s.repos.Galleries.FindByID(photo.GalleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Gallery not found")
		}
		return nil, common.NewInternalError("could not load photo")
	}
	if gallery.PhotographerID != ownerID {
		return nil, common.NewForbiddenError("You do not own this photo")
	}
	return photo, nil
}

// savePhotoFile validates and writes one multipart file below the upload
// root, generating a jpeg thumbnail where the format allows it. It does not
// touch the database.
func (s *AppService) savePhotoFile(galleryID uint, file *multipart.FileHeader) (*model.Photo, error) {
	if file == nil {
		return nil, common.NewValidationError("No file uploaded")
	}

	cfg := config.Get()
	maxBytes := int64(cfg.Upload.MaxUploadMB) * 1024 * 1024
	if maxBytes > 0 && file.Size > maxBytes {
		return nil, common.NewValidationError("file exceeds the upload size limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return nil, common.NewValidationError("cannot determine file type")
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewValidationError("cannot read uploaded file")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return nil, common.NewValidationError(msg)
	}

	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/photos"
	}
	if err := os.MkdirAll(uploadRoot, 0755); err != nil {
		log.Printf("mkdir %s: %v", uploadRoot, err)
		return nil, common.NewInternalError("could not store uploaded file")
	}

	storedName := uuid.New().String() + ext
	dst := filepath.Join(uploadRoot, storedName)

	out, err := os.Create(dst)
	if err != nil {
		return nil, common.NewInternalError("could not store uploaded file")
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return nil, common.NewInternalError("could not store uploaded file")
	}

	photo := &model.Photo{
		GalleryID:   galleryID,
		Filename:    file.Filename,
		StoragePath: cfg.Upload.URLPrefix + storedName,
		Size:        file.Size,
	}

	// Thumbnail failure never fails the upload.
	if thumbName, err := writeThumbnail(dst, uploadRoot, storedName, ext); err == nil && thumbName != "" {
		photo.ThumbnailPath = cfg.Upload.URLPrefix + thumbName
	}

	return photo, nil
}

// writeThumbnail renders a bounded jpeg preview next to the original. Only
// jpeg and png sources are attempted.
func writeThumbnail(srcPath, uploadRoot, storedName, ext string) (string, error) {
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", nil
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	thumb := resize.Thumbnail(thumbnailMaxEdge, thumbnailMaxEdge, img, resize.Lanczos3)

	thumbName := strings.TrimSuffix(storedName, ext) + "_thumb.jpg"
	out, err := os.Create(filepath.Join(uploadRoot, thumbName))
	if err != nil {
		return "", err
	}
	defer func() { _ = out.Close() }()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return "", err
	}
	return thumbName, nil
}

// removePhotoFiles deletes locally stored binaries for a photo. Remote
// (http/https) storage paths are left alone. Errors are ignored: rows are the
// source of truth, stray files are harmless.
func (s *AppService) removePhotoFiles(photo *model.Photo) {
	for _, p := range []string{photo.StoragePath, photo.ThumbnailPath} {
		if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
			continue
		}
		if disk, ok := DiskPathFor(p); ok {
			_ = os.Remove(disk)
		}
	}
}

// DiskPathFor maps a local storage URL path back to its on-disk location.
// Returns false for remote URLs or paths outside the upload prefix.
func DiskPathFor(storagePath string) (string, bool) {
	cfg := config.Get()
	prefix := cfg.Upload.URLPrefix
	if prefix == "" || !strings.HasPrefix(storagePath, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(storagePath, prefix)
	rel = filepath.Clean("/" + rel) // collapse any traversal attempt
	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/photos"
	}
	return filepath.Join(uploadRoot, strings.TrimPrefix(rel, "/")), true
}
