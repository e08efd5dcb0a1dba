package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"food_order/internal/model"
	"food_order/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": signupBindMessage(err)})
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if service.IsSignupConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": conflictMessage(err)})
			return
		}
		slog.ErrorContext(c.Request.Context(), "signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
		return
	}

	c.JSON(http.StatusCreated, model.AuthResponse{
		Token: token,
		User: model.SignupUser{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Mobile:  user.Mobile,
			Address: user.Address,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile and password are required"})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Mobile, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Token: token,
		User: model.LoginUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Mobile: user.Mobile,
		},
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "profile fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, model.Profile{ID: user.ID, Name: user.Name, Email: user.Email})
}

// signupBindMessage reports an over-long field by name and anything else as missing input
func signupBindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "max" {
				return fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param())
			}
		}
	}
	return "All fields are required"
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmailAndMobileTaken):
		return "Email and Mobile already registered"
	case errors.Is(err, service.ErrEmailTaken):
		return "Email already registered"
	default:
		return "Mobile number already registered"
	}
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
	rg.GET("/profile", authMW, h.Profile)
}
