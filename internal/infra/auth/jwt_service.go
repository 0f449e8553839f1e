// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"homepros/config"
	"homepros/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are issued by the identity provider; this service only validates them.
type jwtService struct {
	accessSecret string // Secret key used to verify access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}
