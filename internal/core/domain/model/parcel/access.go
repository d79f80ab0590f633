package parcel

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// Reasons reported by the view policies.
const (
	ReasonParcelBlocked = "parcel is blocked"
	ReasonNotAuthorized = "not authorized"
)

// AuthorizeView decides whether caller may read a parcel's full record. A
// blocked parcel is refused before ownership is considered, administrators
// included.
func AuthorizeView(caller kernel.Identity, sender, receiver kernel.UUID, isBlocked bool) error {
	if isBlocked {
		return errs.NewAccessDeniedError(ReasonParcelBlocked)
	}
	return AuthorizeHistory(caller, sender, receiver)
}

// AuthorizeHistory decides whether caller may read a parcel's tracking
// history: administrators and the two parties, blocked or not.
func AuthorizeHistory(caller kernel.Identity, sender, receiver kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if caller.IsAdmin() || caller.ID().IsEqual(sender) || caller.ID().IsEqual(receiver) {
		return nil
	}
	return errs.NewAccessDeniedError(ReasonNotAuthorized)
}

// IsPubliclyTrackable reports whether the unauthenticated tracking lookup may
// reveal the parcel. Blocked and canceled parcels are reported as missing.
func IsPubliclyTrackable(status Status, isBlocked bool) bool {
	return !isBlocked && status != Canceled && status != Blocked
}
