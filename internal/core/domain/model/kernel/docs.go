// Package kernel holds the shared value objects of the parcel tracking
// domain: identifiers, caller roles and the resolved caller identity that
// the access gateway hands to every use case.
//
// The package includes:
//   - UUID: identifier value object over github.com/google/uuid
//   - Role: the three account roles (admin, sender, receiver)
//   - Identity: an authenticated caller, i.e. an ID paired with a Role
//
// All values are immutable and safe for concurrent use.
package kernel
