package token

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/config"
)

func newTestManager(accessExpiry, refreshExpiry time.Duration) *Manager {
	return NewManager(&config.Config{
		JWTAccessSecret:  "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,
	})
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(15*time.Minute, 168*time.Hour)
	id := Identity{UserID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	pair, err := m.Issue(id)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	got, err := m.VerifyAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, id, *got)

	userID, err := m.VerifyRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, userID)
}

func TestVerifyTamperedSignature(t *testing.T) {
	m := newTestManager(15*time.Minute, 168*time.Hour)
	pair, err := m.Issue(Identity{UserID: uuid.New(), Username: "bob"})
	require.NoError(t, err)

	parts := strings.Split(pair.Access, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = m.VerifyAccess(tampered)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestVerifyExpired(t *testing.T) {
	m := newTestManager(-time.Minute, -time.Minute)
	pair, err := m.Issue(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.Access)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = m.VerifyRefresh(pair.Refresh)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	m := newTestManager(15*time.Minute, 168*time.Hour)
	pair, err := m.Issue(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	// An access token must not pass as a refresh token, and vice versa.
	_, err = m.VerifyRefresh(pair.Access)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = m.VerifyAccess(pair.Refresh)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestVerifyGarbage(t *testing.T) {
	m := newTestManager(15*time.Minute, 168*time.Hour)

	_, err := m.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = m.VerifyRefresh("")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestHashIsStable(t *testing.T) {
	assert.Equal(t, Hash("abc"), Hash("abc"))
	assert.NotEqual(t, Hash("abc"), Hash("abd"))
	assert.Len(t, Hash("abc"), 64)
}
