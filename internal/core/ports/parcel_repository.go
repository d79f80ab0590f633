package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository persists the parcel aggregate. It is the only writer of
// parcel records.
type ParcelRepository interface {
	// Add stores a new parcel. A tracking id collision is reported as
	// *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update writes the aggregate back only if the stored version still equals
	// aggregate.Version(), and appends any tracking events not yet stored. A lost
	// race is reported as *errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}
