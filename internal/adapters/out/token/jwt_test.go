package token_test

import (
	"testing"
	"time"

	"parceltrack/internal/adapters/out/token"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := token.NewJWTService("top-secret", time.Hour)
	require.NoError(t, err)

	identity, err := kernel.NewIdentity(kernel.NewUUID(), kernel.RoleReceiver)
	require.NoError(t, err)

	signed, err := svc.Issue(identity)
	require.NoError(t, err)

	got, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(identity.ID()))
	assert.Equal(t, kernel.RoleReceiver, got.Role())
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	issuedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := issuedAt
	clock := func() time.Time { return now }

	svc, err := token.NewJWTServiceWithClock("top-secret", time.Hour, clock)
	require.NoError(t, err)
	other, err := token.NewJWTServiceWithClock("another-secret", time.Hour, clock)
	require.NoError(t, err)

	identity, err := kernel.NewIdentity(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	signed, err := svc.Issue(identity)
	require.NoError(t, err)
	foreign, err := other.Issue(identity)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  identity.ID().String(),
		"role": "admin",
		"exp":  issuedAt.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  identity.ID().String(),
		"role": "courier",
		"exp":  issuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte("top-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  identity.ID().String(),
		"role": "admin",
	}).SignedString([]byte("top-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"alg none":       noneToken,
		"unknown role":   badRole,
		"missing expiry": noExpiry,
		"empty":          "",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(raw)
			require.ErrorIs(t, err, errs.ErrNotAuthenticated)
		})
	}

	t.Run("expired", func(t *testing.T) {
		now = issuedAt.Add(2 * time.Hour)
		t.Cleanup(func() { now = issuedAt })

		_, err := svc.Verify(signed)
		require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := token.NewJWTService("", time.Hour)
	require.ErrorIs(t, err, token.ErrSecretIsRequired)

	_, err = token.NewJWTService("secret", 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
