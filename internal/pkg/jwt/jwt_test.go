package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "asha@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestJWTService_ParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTService_ParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	access, _, err := svc.GenerateAccessToken("user-1", "asha@example.com")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	assert.False(t, svc.IsTokenRevoked("some-token"))
	svc.RevokeToken("some-token")
	assert.True(t, svc.IsTokenRevoked("some-token"))
}

// Revocation entries must not outlive the token they block: once a revoked
// token's own lifetime has passed, the next revocation sweeps it out.
func TestJWTService_RevokeToken_SweepsExpiredEntries(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "1ms").(*JWTService)

	svc.RevokeToken("old-token")
	time.Sleep(5 * time.Millisecond)

	assert.False(t, svc.IsTokenRevoked("old-token"))

	svc.RevokeToken("new-token")

	svc.mu.RLock()
	defer svc.mu.RUnlock()
	assert.Len(t, svc.revokedTokens, 1)
	assert.NotContains(t, svc.revokedTokens, "old-token")
}
