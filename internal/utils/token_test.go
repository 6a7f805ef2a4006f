package utils

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	t.Run("access token", func(t *testing.T) {
		token, err := GenerateAccessToken("john")
		assert.NoError(t, err)

		subject, err := ParseToken(token, TokenTypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, "john", subject)
	})

	t.Run("refresh token", func(t *testing.T) {
		token, err := GenerateRefreshToken("john@example.com")
		assert.NoError(t, err)

		subject, err := ParseToken(token, TokenTypeRefresh)
		assert.NoError(t, err)
		assert.Equal(t, "john@example.com", subject)
	})
}

func TestParseTokenRejections(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	signed := func(claims jwt.MapClaims, secret string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte(secret))
		assert.NoError(t, err)
		return s
	}

	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signed(jwt.MapClaims{
			"sub": "john", "type": "access", "exp": now.Add(time.Hour).Unix(),
		}, "other-secret")},
		{"expired", signed(jwt.MapClaims{
			"sub": "john", "type": "access", "exp": now.Add(-time.Hour).Unix(),
		}, "test-secret-key")},
		{"missing subject", signed(jwt.MapClaims{
			"type": "access", "exp": now.Add(time.Hour).Unix(),
		}, "test-secret-key")},
		{"wrong class", signed(jwt.MapClaims{
			"sub": "john", "type": "refresh", "exp": now.Add(time.Hour).Unix(),
		}, "test-secret-key")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, TokenTypeAccess)
			// Every rejection collapses into the same sentinel.
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
