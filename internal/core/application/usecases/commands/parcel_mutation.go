package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// mutateParcel runs load, check, mutate and conditional write of one parcel
// inside a single transaction. visible decides whether the caller may see the
// parcel at all; a parcel the caller may not see is reported as not found.
func mutateParcel(
	ctx context.Context,
	uowFactory ParcelUoWFactory,
	parcelID kernel.UUID,
	visible func(p *parcel.Parcel) bool,
	mutate func(p *parcel.Parcel) error,
) (*parcel.Parcel, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.Get(ctx, parcelID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundError("parcel", parcelID.String())
	}
	if err != nil {
		return nil, err
	}
	if visible != nil && !visible(p) {
		return nil, errs.NewObjectNotFoundError("parcel", parcelID.String())
	}

	if err = mutate(p); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
