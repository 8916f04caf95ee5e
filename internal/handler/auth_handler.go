package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Email        string `json:"email" binding:"required,email"`
		BusinessName string `json:"businessName" binding:"required"`
		Password     string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, user, err := h.service.Register(req.Email, req.BusinessName, req.Password)
	if err != nil {
		WriteServiceError(c, err, "registration failed, please try again")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		WriteServiceError(c, err, "login failed, please try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// ForgotPassword always claims success so the endpoint cannot be used to
// enumerate registered accounts.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.service.RequestPasswordReset(req.Email); err != nil {
		WriteServiceError(c, err, "could not process request, please try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link has been sent"})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.service.ResetPassword(req.Token, req.NewPassword); err != nil {
		WriteServiceError(c, err, "password reset failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated, you can now log in"})
}
