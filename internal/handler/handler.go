package handler

import "github.com/Paul-Briman/lumina-photography/internal/service"

type Handler struct {
	service *service.AppService
}

func NewHandler(appService *service.AppService) *Handler {
	return &Handler{service: appService}
}
