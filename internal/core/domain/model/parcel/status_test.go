package parcel_test

import (
	"fmt"
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status name", func(t *testing.T) {
		for _, status := range parcel.AllStatuses() {
			parsed, err := parcel.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should use the spaced wire name for In Transit", func(t *testing.T) {
		assert.Equal(t, "In Transit", parcel.InTransit.String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "in transit", "Lost"} {
			_, err := parcel.ParseStatus(name)

			require.ErrorIs(t, err, parcel.ErrInvalidStatus, name)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range parcel.AllStatuses() {
		require.NoError(t, status.Validate())
	}

	for _, status := range []parcel.Status{parcel.Unknown, parcel.Status(-1), parcel.Status(42)} {
		t.Run(fmt.Sprintf("should reject %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Equal(t, "Unknown", status.String())
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	for _, status := range []parcel.Status{parcel.Requested, parcel.Approved} {
		t.Run("should cancel from "+status.String(), func(t *testing.T) {
			next, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, parcel.Canceled, next)
		})
	}

	for _, status := range []parcel.Status{
		parcel.Dispatched, parcel.InTransit, parcel.Delivered, parcel.Canceled, parcel.Blocked,
	} {
		t.Run("should refuse to cancel from "+status.String(), func(t *testing.T) {
			_, err := status.Cancel()

			require.ErrorIs(t, err, parcel.ErrInvalidTransition)
		})
	}
}

func TestStatus_ConfirmDelivery(t *testing.T) {
	t.Run("should deliver from In Transit", func(t *testing.T) {
		next, err := parcel.InTransit.ConfirmDelivery()

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, next)
	})

	t.Run("should report already delivered distinctly", func(t *testing.T) {
		_, err := parcel.Delivered.ConfirmDelivery()

		require.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
		require.NotErrorIs(t, err, parcel.ErrInvalidTransition)
	})

	for _, status := range []parcel.Status{
		parcel.Requested, parcel.Approved, parcel.Dispatched, parcel.Canceled, parcel.Blocked,
	} {
		t.Run("should refuse to deliver from "+status.String(), func(t *testing.T) {
			_, err := status.ConfirmDelivery()

			require.ErrorIs(t, err, parcel.ErrInvalidTransition)
		})
	}
}

func TestStatus_UpdateTo(t *testing.T) {
	t.Run("should only accept admin settable targets", func(t *testing.T) {
		for _, target := range parcel.AllStatuses() {
			_, err := parcel.Requested.UpdateTo(target)
			if target.IsAdminSettable() {
				require.NoError(t, err, target.String())
				continue
			}
			require.ErrorIs(t, err, parcel.ErrInvalidStatus, target.String())
		}
	})

	t.Run("should refuse updates from terminal statuses", func(t *testing.T) {
		for _, current := range []parcel.Status{parcel.Delivered, parcel.Canceled, parcel.Blocked} {
			_, err := current.UpdateTo(parcel.Dispatched)

			require.ErrorIs(t, err, parcel.ErrInvalidTransition, current.String())
		}
	})

	t.Run("should allow moves among non terminal statuses", func(t *testing.T) {
		next, err := parcel.Dispatched.UpdateTo(parcel.InTransit)

		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, next)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[parcel.Status]bool{parcel.Delivered: true, parcel.Canceled: true, parcel.Blocked: true}

	for _, status := range parcel.AllStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
}
