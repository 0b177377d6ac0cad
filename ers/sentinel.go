// Package ers provides the sentinel-error type used to declare the
// comparable, zero-allocation error constants that this module's
// invariant and error-taxonomy machinery is built on.
package ers

// Error is a type for declaring sentinel errors as typed string
// constants, so they can be compared with errors.Is without an
// allocation.
type Error string

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies errors.Is's optional interface directly, without
// reflection.
func (e Error) Is(err error) bool {
	x, ok := err.(Error)
	return ok && x == e
}

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the invariant helper.
const ErrInvariantViolation Error = Error("invariant violation")
