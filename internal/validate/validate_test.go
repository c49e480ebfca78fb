package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliptube/cliptube-backend/internal/apperr"
)

func TestID(t *testing.T) {
	want := uuid.New()
	got, err := ID("video id", want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ID("video id", "abc123")
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, NonEmpty("title", "hello"))
	assert.ErrorIs(t, NonEmpty("title", ""), apperr.ErrInvalid)
	assert.ErrorIs(t, NonEmpty("title", "   "), apperr.ErrInvalid)
}

func TestUsername(t *testing.T) {
	got, err := Username("  Alice_01 ")
	require.NoError(t, err)
	assert.Equal(t, "alice_01", got)

	_, err = Username("ab")
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = Username("has space")
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestEmail(t *testing.T) {
	got, err := Email(" Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)

	for _, bad := range []string{"", "nope", "@x.com", "a@", "a@nodot"} {
		_, err := Email(bad)
		assert.ErrorIs(t, err, apperr.ErrInvalid, bad)
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("longenough"))
	assert.ErrorIs(t, Password("short"), apperr.ErrInvalid)
}

func TestMaxLen(t *testing.T) {
	assert.NoError(t, MaxLen("content", "ok", 10))
	assert.ErrorIs(t, MaxLen("content", "0123456789x", 10), apperr.ErrInvalid)
}
