package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reliefmap/relief-coordination-api/internal/dto"
	apierrors "github.com/reliefmap/relief-coordination-api/internal/errors"
	"github.com/reliefmap/relief-coordination-api/internal/middleware"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register is the combined signup/signin entry point: unknown usernames are
// registered, known ones are logged in.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username      string `json:"username" binding:"required"`
		Password      string `json:"password"`
		ContactNumber string `json:"contactNumber"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RegisterOrLogin(services.RegisterOrLoginInput{
		Username:      req.Username,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	message := "Login successful"
	status := http.StatusOK
	if result.Registered {
		message = "User registered successfully"
		status = http.StatusCreated
	}

	respondSuccess(c, status, dto.AuthResponseDTO{
		User:         dto.ToUserDTO(*result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, message)
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserDTO(*user), "")
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameLength):
		apierrors.BadRequest(c, "Username must be between 3 and 50 characters")
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, "Password must be at least 6 characters if provided")
	case errors.Is(err, services.ErrContactNumberLength):
		apierrors.BadRequest(c, "Contact number must be between 8 and 20 characters")
	case errors.Is(err, services.ErrAccountDisabled):
		apierrors.BadRequest(c, "Account is disabled. Please contact administrator")
	case errors.Is(err, services.ErrPasswordRequired):
		apierrors.BadRequest(c, "Password is required for this account")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.BadRequest(c, "Invalid username or password")
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.BadRequest(c, "Username already exists")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		logrus.WithError(err).Error("register-or-login failed")
		apierrors.InternalError(c, "Failed to register user")
	}
}
