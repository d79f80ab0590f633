package password_test

import (
	"testing"

	"parceltrack/internal/adapters/out/password"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher, err := password.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	require.NoError(t, hasher.Compare(hash, "correct horse"))
	require.ErrorIs(t, hasher.Compare(hash, "wrong"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	_, err := password.NewBcryptHasher(bcrypt.MaxCost + 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = password.NewBcryptHasher(1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
