package jwt

import (
	"testing"
	"time"

	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "digi-sanchaar",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "asha@example.com", testJWTConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "asha@example.com", (*claims)["email"])
	assert.Equal(t, "digi-sanchaar", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "asha@example.com", testJWTConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "a-different-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "test-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
