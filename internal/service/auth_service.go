package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/common"
	"github.com/Paul-Briman/lumina-photography/internal/config"
	"github.com/Paul-Briman/lumina-photography/internal/model"
	"github.com/Paul-Briman/lumina-photography/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// Register creates a photographer account and returns a signed login token
// alongside the stored record.
func (s *AppService) Register(email, businessName, password string) (string, *model.Photographer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if valid, msg := utils.ValidatePassword(password); !valid {
		return "", nil, common.NewValidationError(msg)
	}
	if strings.TrimSpace(businessName) == "" {
		return "", nil, common.NewValidationError("business name is required")
	}

	exists, err := s.repos.Photographers.EmailExists(email)
	if err != nil {
		return "", nil, common.NewInternalError("registration failed, please try again")
	}
	if exists {
		return "", nil, common.NewValidationError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, common.NewInternalError("registration failed, please try again")
	}

	photographer := &model.Photographer{
		Email:        email,
		BusinessName: businessName,
		PasswordHash: string(hash),
	}
	if err := s.repos.Photographers.Create(photographer); err != nil {
		return "", nil, common.NewInternalError("registration failed, please try again")
	}

	token, err := s.issueLoginToken(photographer)
	if err != nil {
		return "", nil, err
	}
	return token, photographer, nil
}

// Login verifies credentials and returns a signed login token.
func (s *AppService) Login(email, password string) (string, *model.Photographer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	photographer, err := s.repos.Photographers.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, common.NewUnauthorizedError("Invalid credentials")
		}
		return "", nil, common.NewInternalError("login failed, please try again")
	}

	if bcrypt.CompareHashAndPassword([]byte(photographer.PasswordHash), []byte(password)) != nil {
		return "", nil, common.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.issueLoginToken(photographer)
	if err != nil {
		return "", nil, err
	}
	return token, photographer, nil
}

// RequestPasswordReset issues a one-hour reset token and emails the reset
// link. It never reveals whether the email is registered: unknown addresses
// and mail failures both return nil.
func (s *AppService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	photographer, err := s.repos.Photographers.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return common.NewInternalError("could not process request, please try again")
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return common.NewInternalError("could not process request, please try again")
	}

	expiry := time.Now().Add(resetTokenTTL)
	if err := s.repos.Photographers.SetResetToken(photographer.ID, token, expiry); err != nil {
		return common.NewInternalError("could not process request, please try again")
	}

	resetURL := strings.TrimRight(config.Get().Server.BaseURL, "/") + "/reset-password?token=" + token
	if err := s.mailer.SendPasswordResetEmail(photographer.Email, resetURL); err != nil {
		// Swallowed so the response stays identical for known and unknown
		// addresses.
		log.Printf("[mail] password reset email failed: %v", err)
	}
	return nil
}

// ResetPassword consumes a reset token. The token is single-use: it is
// cleared together with its expiry once the password is rewritten.
func (s *AppService) ResetPassword(token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return common.NewValidationError("Invalid or expired reset token")
	}
	if valid, msg := utils.ValidatePassword(newPassword); !valid {
		return common.NewValidationError(msg)
	}

	photographer, err := s.repos.Photographers.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewValidationError("Invalid or expired reset token")
		}
		return common.NewInternalError("password reset failed, please try again")
	}

	if photographer.ResetTokenExpiry == nil || time.Now().After(*photographer.ResetTokenExpiry) {
		return common.NewValidationError("Invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewInternalError("password reset failed, please try again")
	}

	if err := s.repos.Photographers.UpdatePasswordAndClearReset(photographer.ID, string(hash)); err != nil {
		return common.NewInternalError("password reset failed, please try again")
	}
	return nil
}

func (s *AppService) issueLoginToken(p *model.Photographer) (string, error) {
	cfg := config.Get()
	token, err := utils.GenerateLoginToken(p.ID, p.Email, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return "", common.NewInternalError("login failed, please try again")
	}
	return token, nil
}
