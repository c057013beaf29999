package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deeraj1899/EMS/internal/domain/employee"
)

func TestRevokeTokenBlocksUntilExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", "1h").(*JWTService)

	token, _, err := svc.GenerateToken("emp-1", "org-1", employee.RoleEmployee)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRevokeTokenEvictsExpiredEntries(t *testing.T) {
	svc := NewJWTService("test-secret", "1h").(*JWTService)

	// An entry whose token already expired must not linger once another
	// revocation comes in, and must not report as revoked.
	svc.mu.Lock()
	svc.revokedTokens["stale-token"] = 1
	svc.mu.Unlock()
	assert.False(t, svc.IsTokenRevoked("stale-token"))

	token, _, err := svc.GenerateToken("emp-1", "org-1", employee.RoleEmployee)
	require.NoError(t, err)
	svc.RevokeToken(token)

	svc.mu.RLock()
	_, stale := svc.revokedTokens["stale-token"]
	svc.mu.RUnlock()
	assert.False(t, stale)
	assert.True(t, svc.IsTokenRevoked(token))
}
