package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) GetGoogleLoginURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockAuthService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (string, string, *domain.User, error) {
	args := m.Called(ctx, code, receivedState, expectedState)
	var user *domain.User
	if u, ok := args.Get(2).(*domain.User); ok {
		user = u
	}
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	args := m.Called(ctx, tokenString)
	if claims, ok := args.Get(0).(*dto.AuthClaims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	args := m.Called(ctx, user, ttl, tokenType)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	args := m.Called(ctx, refreshTokenString)
	return args.String(0), args.String(1), args.Error(2)
}

func accessClaims(userID string) *dto.AuthClaims {
	return &dto.AuthClaims{
		UserID:    userID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newProtectedApp(authService *MockAuthService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", Protected(authService), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(UserIDKey).(string))
	})
	return app
}

func TestProtected_ValidToken(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("ValidateJWT", mock.Anything, "valid-token").Return(accessClaims("user123"), nil)
	app := newProtectedApp(authService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+"valid-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtected_MissingHeader(t *testing.T) {
	app := newProtectedApp(new(MockAuthService))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_RefreshTokenRejected(t *testing.T) {
	authService := new(MockAuthService)
	claims := accessClaims("user456")
	claims.TokenType = "refresh"
	authService.On("ValidateJWT", mock.Anything, "refresh-token").Return(claims, nil)
	app := newProtectedApp(authService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+"refresh-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProtected_InvalidToken(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("ValidateJWT", mock.Anything, "garbage").Return(nil, assert.AnError)
	app := newProtectedApp(authService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+"garbage")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
