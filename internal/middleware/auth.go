package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reliefmap/relief-coordination-api/internal/auth"
	"github.com/reliefmap/relief-coordination-api/internal/constants"
	apierrors "github.com/reliefmap/relief-coordination-api/internal/errors"
)

// RequireAuth rejects requests that do not carry a valid bearer access token.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c, tokens)
		if !ok {
			apierrors.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// OptionalAuth attaches the user ID when a valid bearer token is present and
// lets the request through anonymously otherwise.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c, tokens); ok {
			c.Set(constants.ContextKeyUserID, userID)
		}
		c.Next()
	}
}

func bearerUserID(c *gin.Context, tokens *auth.TokenManager) (uint64, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := tokens.VerifyAccessToken(tokenString)
	if err != nil {
		return 0, false
	}

	return userID, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
