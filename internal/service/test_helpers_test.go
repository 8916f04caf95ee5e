package service

import (
	"errors"
	"testing"

	"github.com/Paul-Briman/lumina-photography/internal/repository"
	"github.com/Paul-Briman/lumina-photography/internal/testutils"

	"gorm.io/gorm"
)

var errSMTPDown = errors.New("smtp unreachable")

// fakeMailer records outgoing reset mail instead of dialing SMTP.
type fakeMailer struct {
	sentTo   []string
	sentURLs []string
	fail     error
}

func (m *fakeMailer) SendPasswordResetEmail(to, resetURL string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sentTo = append(m.sentTo, to)
	m.sentURLs = append(m.sentURLs, resetURL)
	return nil
}

func setupService(t *testing.T) (*AppService, *fakeMailer, *gorm.DB) {
	t.Helper()
	testutils.SetupConfig(t)
	gdb := testutils.SetupDB(t)
	mailer := &fakeMailer{}
	svc := NewAppService(repository.NewRepositories(gdb), mailer)
	return svc, mailer, gdb
}
