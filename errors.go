package lazy

import (
	"github.com/gohalcyon/lazy/erc"
	"github.com/gohalcyon/lazy/ers"
)

// Sentinel errors for the conditions the sequence error taxonomy (§7)
// requires a caller-visible, comparable error for. These follow the
// teacher's pattern of declaring sentinels as typed string constants
// so they can be compared with errors.Is without an allocation.
const (
	// ErrEmptyReduce is panicked by ReduceSelf and ReduceRight when
	// called on an empty sequence, since neither has an element to
	// seed the fold with.
	ErrEmptyReduce ers.Error = "reduce of empty sequence with no seed"

	// ErrInvalidInput is panicked by constructors (Range, Lazy) given
	// arguments that don't describe a valid sequence.
	ErrInvalidInput ers.Error = "invalid input"

	// ErrUnboundedIteration names the misuse of fully materializing an
	// unbounded generated sequence. No function in this package panics
	// with it: such a call runs without end.
	ErrUnboundedIteration ers.Error = "operation requires a bounded sequence"

	// ErrAlreadyAsync is panicked by Async when given a sequence that
	// is already wrapped in an async driver; nesting drivers is a
	// caller misuse rather than a recoverable condition.
	ErrAlreadyAsync ers.Error = "sequence is already wrapped by an async driver"

	// ErrIteratorExhausted names reading an Iterator after Next has
	// returned false. No iterator in this package returns it; Value
	// has no error result.
	ErrIteratorExhausted ers.Error = "iterator exhausted"

	// ErrSchedulerStopped names scheduling work on a stopped Scheduler.
	// No Scheduler in this package can be stopped or returns it.
	ErrSchedulerStopped ers.Error = "scheduler is stopped"
)

// invariant panics, joined with ers.ErrInvariantViolation, if cond is
// false. It is built on the teacher's erc.NewInvariantViolation and
// guards caller misuse rather than recoverable runtime errors; its one
// use is Async's check against double-wrapping an async sequence.
func invariant(cond bool, args ...any) {
	if !cond {
		panic(erc.NewInvariantViolation(args...))
	}
}
