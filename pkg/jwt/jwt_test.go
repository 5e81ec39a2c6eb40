package jwt

import (
	"testing"
	"time"

	"hospital-food-service/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:      secret,
		TokenExpiry: time.Hour,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, "admin@hospital.test", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@hospital.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService("secret-one")
	other := newTestService("secret-two")

	token, _, err := svc.GenerateToken(uuid.New(), "pantry@hospital.test", "pantry")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:      "test-secret",
		TokenExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateToken(uuid.New(), "delivery@hospital.test", "delivery")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	_, first, err := svc.GenerateToken(userID, "admin@hospital.test", "admin")
	require.NoError(t, err)
	_, second, err := svc.GenerateToken(userID, "admin@hospital.test", "admin")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
