package service

import "github.com/Paul-Briman/lumina-photography/internal/repository"

// AppService carries every use case of the API behind one receiver, the way
// the handlers consume it.
type AppService struct {
	repos  *repository.Repositories
	mailer Mailer
}

func NewAppService(repos *repository.Repositories, mailer Mailer) *AppService {
	if mailer == nil {
		mailer = NewSMTPMailer()
	}
	return &AppService{repos: repos, mailer: mailer}
}
