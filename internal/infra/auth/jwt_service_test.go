package auth

import (
	"testing"
	"time"

	"homepros/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signTestToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	signed := signTestToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "owner@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	})

	token, err := jwtService.ValidateToken(signed, testSecret)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "owner@example.com", claims["email"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	signed := signTestToken(t, jwt.SigningMethodHS256, "some_other_secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	_, err = jwtService.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	signed := signTestToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-1 * time.Minute).Unix(),
	})

	_, err = jwtService.ValidateToken(signed, testSecret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", testSecret)
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
