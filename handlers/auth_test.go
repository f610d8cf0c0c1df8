package handlers

import (
	"os"
	"testing"
	"time"

	"fittrack/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret-for-token-round-trip-0123456789"
	t.Setenv("JWT_SECRET", secret)

	user := models.User{
		ID:       42,
		Username: "ana",
		Role:     models.RoleStudent,
	}

	token, err := generateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token, "every response path carries a real token, never an empty string")

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, 42, claims["user_id"])
	assert.Equal(t, "ana", claims["username"])
	assert.Equal(t, models.RoleStudent, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestGenerateTokenDefaultSecret(t *testing.T) {
	// Without JWT_SECRET the development fallback still signs successfully
	old := os.Getenv("JWT_SECRET")
	os.Unsetenv("JWT_SECRET")
	defer os.Setenv("JWT_SECRET", old)

	token, err := generateToken(models.User{ID: 1, Username: "ben", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
