// Package errs holds the typed errors shared by the domain model, the
// repositories and the HTTP adapter.
//
// Every type wraps one sentinel so callers match the kind with errors.Is and
// read the details with errors.As:
//
//	ErrValueIsRequired   *ValueIsRequiredError    missing name, city, delivery time
//	ErrValueIsInvalid    *ValueIsInvalidError     malformed value
//	ErrValueIsOutOfRange *ValueIsOutOfRangeError  distance outside [0, 20)
//	ErrObjectNotFound    *ObjectNotFoundError     unknown city, restaurant, customer or driver
//
// The HTTP adapter maps the first three to 400 and ObjectNotFound to 404.
package errs
