package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future exp is not expired", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		assert.False(t, TokenExpired(token, now))
	})

	t.Run("past exp is expired", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
		assert.True(t, TokenExpired(token, now))
	})

	t.Run("missing exp never expires", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "admin"})
		assert.False(t, TokenExpired(token, now))
	})

	t.Run("malformed token counts as expired", func(t *testing.T) {
		assert.True(t, TokenExpired("not-a-jwt", now))
	})
}
