package service

import (
	"errors"
	"strings"

	"github.com/Paul-Briman/lumina-photography/internal/common"
	"github.com/Paul-Briman/lumina-photography/internal/model"
	"github.com/Paul-Briman/lumina-photography/internal/utils"

	"gorm.io/gorm"
)

// GalleryUpdate carries the owner-editable gallery fields; nil means "leave
// unchanged".
type GalleryUpdate struct {
	Title       *string
	ClientName  *string
	DownloadPin *string
}

func (s *AppService) ListGalleries(ownerID uint) ([]model.Gallery, error) {
	galleries, err := s.repos.Galleries.ListByPhotographer(ownerID)
	if err != nil {
		return nil, common.NewInternalError("could not list galleries")
	}
	return galleries, nil
}

// CreateGallery persists a gallery owned by ownerID. The share token and the
// download PIN are generated server-side and the token never changes again.
func (s *AppService) CreateGallery(ownerID uint, title, clientName string) (*model.Gallery, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.NewValidationError("title is required")
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, common.NewValidationError("client name is required")
	}

	shareToken, err := utils.GenerateShareToken()
	if err != nil {
		return nil, common.NewInternalError("could not create gallery")
	}
	pin, err := utils.GenerateDownloadPin()
	if err != nil {
		return nil, common.NewInternalError("could not create gallery")
	}

	gallery := &model.Gallery{
		PhotographerID: ownerID,
		Title:          title,
		ClientName:     clientName,
		ShareToken:     shareToken,
		DownloadPin:    pin,
	}
	if err := s.repos.Galleries.Create(gallery); err != nil {
		return nil, common.NewInternalError("could not create gallery")
	}
	return gallery, nil
}

// GetGallery returns the gallery with its photos; only the owner may read it.
func (s *AppService) GetGallery(ownerID, galleryID uint) (*model.Gallery, error) {
	gallery, err := s.repos.Galleries.FindByIDWithPhotos(galleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Gallery not found")
		}
		return nil, common.NewInternalError("could not load gallery")
	}
	if gallery.PhotographerID != ownerID {
		return nil, common.NewForbiddenError("You do not own this gallery")
	}
	return gallery, nil
}

func (s *AppService) UpdateGallery(ownerID, galleryID uint, update GalleryUpdate) (*model.Gallery, error) {
	if _, err := s.ownedGallery(ownerID, galleryID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, common.NewValidationError("title cannot be empty")
		}
		updates["title"] = *update.Title
	}
	if update.ClientName != nil {
		if strings.TrimSpace(*update.ClientName) == "" {
			return nil, common.NewValidationError("client name cannot be empty")
		}
		updates["client_name"] = *update.ClientName
	}
	if update.DownloadPin != nil {
		if !utils.ValidDownloadPin(*update.DownloadPin) {
			return nil, common.NewValidationError("download PIN must be exactly 4 digits")
		}
		updates["download_pin"] = *update.DownloadPin
	}

	if len(updates) > 0 {
		if err := s.repos.Galleries.UpdateFields(galleryID, updates); err != nil {
			return nil, common.NewInternalError("could not update gallery")
		}
	}
	return s.GetGallery(ownerID, galleryID)
}

// SetCoverPhoto designates one of the gallery's own photos as its cover.
func (s *AppService) SetCoverPhoto(ownerID, galleryID, photoID uint) (*model.Gallery, error) {
	if _, err := s.ownedGallery(ownerID, galleryID); err != nil {
		return nil, err
	}

	photo, err := s.repos.Photos.FindInGallery(galleryID, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Photo not found in this gallery")
		}
		return nil, common.NewInternalError("could not set cover photo")
	}

	if err := s.repos.Galleries.SetCoverPhoto(galleryID, &photo.ID); err != nil {
		return nil, common.NewInternalError("could not set cover photo")
	}
	return s.GetGallery(ownerID, galleryID)
}

// DeleteGallery removes the gallery and cascades to its photos and invoices
// atomically. Stored photo files are removed best-effort afterwards.
func (s *AppService) DeleteGallery(ownerID, galleryID uint) error {
	gallery, err := s.ownedGallery(ownerID, galleryID)
	if err != nil {
		return err
	}

	photos, err := s.repos.Photos.ListByGallery(gallery.ID)
	if err != nil {
		return common.NewInternalError("could not delete gallery")
	}

	if err := s.repos.Galleries.DeleteCascade(gallery.ID); err != nil {
		return common.NewInternalError("could not delete gallery")
	}

	for i := range photos {
		s.removePhotoFiles(&photos[i])
	}
	return nil
}

// GetGalleryByShareToken serves the public share page: no auth, no PIN.
func (s *AppService) GetGalleryByShareToken(token string) (*model.Gallery, error) {
	gallery, err := s.repos.Galleries.FindByShareTokenWithPhotos(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Gallery not found")
		}
		return nil, common.NewInternalError("could not load gallery")
	}
	return gallery, nil
}

// VerifyDownloadPin checks a viewer-submitted PIN against the gallery. A
// gallery without a PIN gates nothing and accepts any submission.
func (s *AppService) VerifyDownloadPin(token, pin string) error {
	gallery, err := s.repos.Galleries.FindByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("Gallery not found")
		}
		return common.NewInternalError("could not verify PIN")
	}
	if gallery.DownloadPin == "" {
		return nil
	}
	if !utils.PinMatches(gallery.DownloadPin, pin) {
		return common.NewForbiddenError("Incorrect download PIN")
	}
	return nil
}

// SharedPhotoForDownload resolves a photo on the public share page after
// verifying the download PIN server-side.
func (s *AppService) SharedPhotoForDownload(token string, photoID uint, pin string) (*model.Photo, error) {
	gallery, err := s.repos.Galleries.FindByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Gallery not found")
		}
		return nil, common.NewInternalError("could not load photo")
	}

	if gallery.DownloadPin != "" && !utils.PinMatches(gallery.DownloadPin, pin) {
		return nil, common.NewForbiddenError("Incorrect download PIN")
	}

	photo, err := s.repos.Photos.FindInGallery(gallery.ID, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Photo not found")
		}
		return nil, common.NewInternalError("could not load photo")
	}
	return photo, nil
}

// ownedGallery loads a gallery and enforces ownership: 404 when missing, 403
// when owned by someone else.
func (s *AppService) ownedGallery(ownerID, galleryID uint) (*model.Gallery, error) {
	gallery, err := s.repos.Galleries.FindByID(galleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Gallery not found")
		}
		return nil, common.NewInternalError("could not load gallery")
	}
	if gallery.PhotographerID != ownerID {
		return nil, common.NewForbiddenError("You do not own this gallery")
	}
	return gallery, nil
}
