package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homepros/config"
	mockservice "homepros/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockservice.MockTokenService
}

func createTestAuthMiddleware(t *testing.T) *authMiddlewareFixtures {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	return &authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, cfg),
		tokenSvc:   tokenSvc,
	}
}

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/1/claim", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	token := &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": userID.String(), "email": "owner@example.com"},
	}
	fx.tokenSvc.EXPECT().
		ValidateToken("valid-token", "test-access-secret").
		Return(token, nil)

	c, rec := newAuthTestContext("Bearer valid-token")

	nextCalled := false
	err := fx.middleware.Authenticate(func(c echo.Context) error {
		nextCalled = true

		actor, ok := GetActor(c)
		assert.True(t, ok)
		assert.Equal(t, userID, actor.UserID)
		assert.Equal(t, "owner@example.com", actor.Email)

		return c.NoContent(http.StatusOK)
	})(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
	fx.tokenSvc.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer token")
	fx.tokenSvc.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("expired-token", "test-access-secret").
		Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext("Bearer expired-token")

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_Authenticate_BadUserID(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	token := &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": "not-a-uuid"},
	}
	fx.tokenSvc.EXPECT().
		ValidateToken("odd-token", "test-access-secret").
		Return(token, nil)

	c, rec := newAuthTestContext("Bearer odd-token")

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user ID format")
}
