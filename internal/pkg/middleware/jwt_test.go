package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtpkg "github.com/code01-66/Digi-Sanchaar/internal/pkg/jwt"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "digi-sanchaar",
	}
}

func invokeProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	var called bool
	handler := JWTAuthMiddleware(jwtTestConfig())(func(c echo.Context) error {
		gotID, called = UserIDFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, gotID, called
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "asha@example.com", jwtTestConfig())
	require.NoError(t, err)

	rec, gotID, called := invokeProtected(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, userID, gotID)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, called := invokeProtected(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _, called := invokeProtected(t, "NotBearer token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuthMiddleware_TamperedToken(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken(uuid.New(), "asha@example.com", jwtTestConfig())
	require.NoError(t, err)

	rec, _, called := invokeProtected(t, "Bearer "+token+"tampered")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
