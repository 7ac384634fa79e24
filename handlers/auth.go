// File: handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/services/user"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	account, token, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    account,
		"token":   token,
	})
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.AuthUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	account, token, err := h.Service.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    account,
		"token":   token,
	})
}

func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	account, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}
