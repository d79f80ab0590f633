// Package token issues and verifies the HS256 bearer tokens that carry a
// caller's id and role.
package token

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var ErrSecretIsRequired = errors.New("jwt secret is required")

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTService signs tokens with a shared secret. Subject is the user id.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	return NewJWTServiceWithClock(secret, ttl, time.Now)
}

func NewJWTServiceWithClock(secret string, ttl time.Duration, now func() time.Time) (*JWTService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, "1ns", "unbounded")
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: now}, nil
}

func (s *JWTService) Issue(identity kernel.Identity) (string, error) {
	if err := identity.Validate(); err != nil {
		return "", err
	}

	issuedAt := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
		Role: identity.Role().String(),
	})

	return token.SignedString(s.secret)
}

// Verify rejects tokens with a bad signature, another algorithm, a missing
// or past expiry, or claims that do not form a valid identity.
func (s *JWTService) Verify(raw string) (kernel.Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return kernel.Identity{}, errs.NewNotAuthenticatedErrorWithCause("invalid token", err)
	}

	id, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return kernel.Identity{}, errs.NewNotAuthenticatedErrorWithCause("invalid token subject", err)
	}
	role, err := kernel.ParseRole(parsed.Role)
	if err != nil {
		return kernel.Identity{}, errs.NewNotAuthenticatedErrorWithCause("invalid token role", err)
	}

	return kernel.NewIdentity(id, role)
}
