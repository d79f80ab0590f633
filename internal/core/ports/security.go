package ports

import (
	"parceltrack/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs bearer tokens for authenticated identities.
type TokenIssuer interface {
	Issue(identity kernel.Identity) (string, error)
}

// TokenVerifier resolves a bearer token back to the identity it was issued
// for. Invalid or expired tokens yield *errs.NotAuthenticatedError.
type TokenVerifier interface {
	Verify(token string) (kernel.Identity, error)
}
