// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type unwraps to one sentinel (ErrObjectNotFound, ErrAccessDenied, ...),
// so the HTTP layer classifies failures with errors.Is and reads details with
// errors.As. Constructors come in pairs, with and without a cause:
//
//	errs.NewObjectNotFoundError("parcel", id)
//	errs.NewValueIsInvalidErrorWithCause("weight", err)
package errs
