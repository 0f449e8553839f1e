package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates bearer tokens issued by the external identity
// provider. This core never issues credentials; it only verifies them to
// extract the acting user.
type TokenService interface {
	// ValidateToken checks a token string against the given secret and
	// returns the parsed token when valid.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
