package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "admin", "secret", time.Hour, "exchange_shop")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "exchange_shop", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT("user-1", "user", "secret", -time.Minute, "exchange_shop")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.Error(t, err)
}
