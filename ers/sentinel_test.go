package ers

import (
	"errors"
	"testing"
)

func TestErrorIsComparableWithoutAllocation(t *testing.T) {
	const sentinel Error = "boom"

	if sentinel.Error() != "boom" {
		t.Fatalf("unexpected message: %q", sentinel.Error())
	}

	if !errors.Is(sentinel, sentinel) {
		t.Fatal("a sentinel must be errors.Is itself")
	}

	const other Error = "bang"
	if errors.Is(sentinel, other) {
		t.Fatal("distinct sentinels must not compare equal")
	}

	if errors.Is(sentinel, errors.New("boom")) {
		t.Fatal("an Error sentinel must not match an unrelated error with the same text")
	}
}

func TestErrInvariantViolationIsASentinel(t *testing.T) {
	if !errors.Is(ErrInvariantViolation, ErrInvariantViolation) {
		t.Fatal("ErrInvariantViolation must be its own errors.Is target")
	}
	if ErrInvariantViolation.Error() != "invariant violation" {
		t.Fatalf("unexpected message: %q", ErrInvariantViolation.Error())
	}
}
