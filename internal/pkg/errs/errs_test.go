package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("duplicate key")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "parcel not found",
			err:      errs.NewObjectNotFoundError("parcel", "7d3c"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 7d3c",
		},
		{
			name:     "parcel not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("parcel", "7d3c", errors.New("record not found")),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: parcel, ID is: 7d3c (cause: record not found)",
		},
		{
			name:     "duplicate email",
			err:      errs.NewObjectAlreadyExistsError("email", "jane@example.com"),
			sentinel: errs.ErrObjectAlreadyExists,
			want:     "object already exists: email is jane@example.com",
		},
		{
			name:     "tracking id collision",
			err:      errs.NewObjectAlreadyExistsErrorWithCause("tracking id", "TRK-20250101-ABC123", cause),
			sentinel: errs.ErrObjectAlreadyExists,
			want:     "object already exists: tracking id is TRK-20250101-ABC123 (cause: duplicate key)",
		},
		{
			name:     "invalid email",
			err:      errs.NewValueIsInvalidError("email"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: email",
		},
		{
			name:     "invalid weight with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("weight", errors.New("-1 is not a positive number")),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: weight (cause: -1 is not a positive number)",
		},
		{
			name:     "weight out of range",
			err:      errs.NewValueIsOutOfRangeError("weight", 0, 0.01, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 0 is weight, min value is 0.01, max value is 1000",
		},
		{
			name:     "missing pickup address",
			err:      errs.NewValueIsRequiredError("pickup address"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: pickup address",
		},
		{
			name:     "concurrent parcel update",
			err:      errs.NewVersionIsInvalidErrorWithCause("parcel"),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: parcel",
		},
		{
			name:     "concurrent parcel update with cause",
			err:      errs.NewVersionIsInvalidError("parcel", errors.New("0 rows affected")),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: parcel (cause: 0 rows affected)",
		},
		{
			name:     "blocked parcel",
			err:      errs.NewAccessDeniedError("parcel is blocked"),
			sentinel: errs.ErrAccessDenied,
			want:     "access denied: parcel is blocked",
		},
		{
			name:     "missing token",
			err:      errs.NewNotAuthenticatedErrorWithCause("invalid token", errors.New("token is expired")),
			sentinel: errs.ErrNotAuthenticated,
			want:     "not authenticated: invalid token (cause: token is expired)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handler: %w", tt.err), tt.sentinel)
		})
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("get parcel: %w", errs.NewObjectNotFoundError("parcel", "7d3c"))

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "parcel", notFound.ParamName)

	var denied *errs.AccessDeniedError
	assert.False(t, errors.As(wrapped, &denied))
}

func TestErrorsAreJoinable(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("type"),
		errs.NewValueIsInvalidError("weight"),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestValuesAreSanitized(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("email", "jane@example.com\r\nX-Injected: 1")

	assert.NotContains(t, err.Error(), "\n")
	assert.NotContains(t, err.Error(), "\r")
	assert.Contains(t, err.Error(), "jane@example.com X-Injected: 1")
}
