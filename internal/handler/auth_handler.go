package handler

import (
	"errors"
	"net/http"

	"aura-backend/internal/services"
	"aura-backend/internal/transport/httpdto"
	aura_errors "aura-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Invalid request body"))
		return
	}

	err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Password:    req.Password,
		Address:     req.Address,
		Email:       req.Email,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Image:       req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, aura_errors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Name, phone and password are required"))
		case errors.Is(err, aura_errors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Phone already in use"))
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, httpdto.NewMessageResponse("Failed to register user"))
		}
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("User created successfully"))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Invalid request body"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, aura_errors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Phone and password are required"))
		case errors.Is(err, aura_errors.ErrNotFound):
			c.JSON(http.StatusNotFound, httpdto.NewMessageResponse("User not found"))
		case errors.Is(err, aura_errors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Invalid credentials"))
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, httpdto.NewMessageResponse("Login failed"))
		}
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Token: res.Token,
		User: httpdto.AuthUserDTO{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Phone: res.User.Phone,
		},
	})
}

// Logout handles POST /auth/logout. Tokens are stateless; nothing is
// invalidated server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.LogoutResponse{
		Message:      "Logged out successfully",
		Instructions: "Please remove the token from client storage",
	})
}
