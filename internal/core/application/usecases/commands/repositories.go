package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	UoW interface {
		TxManager
		ParcelRepoFactory
		UserRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// TrackingIDGenerator yields candidate tracking identifiers. Candidates
	// may collide; the create handler retries on a storage conflict.
	TrackingIDGenerator interface {
		Generate() string
	}

	// Clock returns the time stamped on tracking events and accounts.
	Clock func() time.Time
)
