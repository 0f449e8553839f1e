// Package middleware holds the HTTP-specific middleware for the directory API.
package middleware

import (
	"net/http"
	"strings"

	"homepros/config"
	"homepros/internal/domain/service"
	"homepros/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		// The email claim feeds billing-customer creation; it may be absent
		// on older tokens.
		email, _ := claims["email"].(string)

		c.Set("userID", userID)
		c.Set("email", email)

		return next(c)
	}
}

// GetUserID extracts the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// GetActor builds the acting identity for use case calls from the context
// values set by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return usecase.Actor{}, false
	}

	email, _ := c.Get("email").(string)

	return usecase.Actor{UserID: userID, Email: email}, true
}
