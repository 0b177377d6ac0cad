// Package erc provides the invariant-violation error constructor that
// this module's internal misuse checks panic with.
package erc

import (
	"errors"
	"fmt"

	"github.com/gohalcyon/lazy/ers"
)

// NewInvariantViolation builds an error rooted in
// ers.ErrInvariantViolation. A single error or string argument is
// joined directly onto the sentinel; any other shape is rendered with
// fmt. In both cases the result remains reachable via errors.Is/As
// against ers.ErrInvariantViolation.
func NewInvariantViolation(args ...any) error {
	switch len(args) {
	case 0:
		return ers.ErrInvariantViolation
	case 1:
		switch arg := args[0].(type) {
		case error:
			return errors.Join(arg, ers.ErrInvariantViolation)
		case string:
			return errors.Join(ers.Error(arg), ers.ErrInvariantViolation)
		default:
			return fmt.Errorf("%v: %w", args[0], ers.ErrInvariantViolation)
		}
	default:
		var errs []error
		var rest []any
		for _, arg := range args {
			if err, ok := arg.(error); ok {
				errs = append(errs, err)
				continue
			}
			rest = append(rest, arg)
		}

		out := append([]error{ers.ErrInvariantViolation}, errs...)
		if len(rest) > 0 {
			out = append(out, errors.New(fmt.Sprintln(rest...)))
		}
		return errors.Join(out...)
	}
}
