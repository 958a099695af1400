package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signingSecret = "unit-test-secret"

func TestGenerateToken_ClaimsRoundTrip(t *testing.T) {
	token, jti, err := GenerateToken(signingSecret, "admin-1", "ADMIN", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := ParseToken(signingSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Sub)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, jti, claims.ID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(signingSecret, "admin-1", "ADMIN", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("some-other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken(signingSecret, "admin-1", "ADMIN", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(signingSecret, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(signingSecret, "not.a.jwt")
	assert.Error(t, err)
}

func TestGenerateToken_FreshJTIEachCall(t *testing.T) {
	first, jti1, err := GenerateToken(signingSecret, "admin-1", "ADMIN", time.Minute)
	require.NoError(t, err)
	second, jti2, err := GenerateToken(signingSecret, "admin-1", "ADMIN", time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
	assert.NotEqual(t, first, second)
}
