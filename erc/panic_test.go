package erc

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gohalcyon/lazy/ers"
)

func TestNewInvariantViolationNoArgs(t *testing.T) {
	err := NewInvariantViolation()
	if !errors.Is(err, ers.ErrInvariantViolation) {
		t.Fatal("expected the sentinel itself")
	}
}

func TestNewInvariantViolationErrorArg(t *testing.T) {
	err := NewInvariantViolation(io.EOF)
	if !errors.Is(err, io.EOF) {
		t.Fatal("expected to unwrap to the original error")
	}
	if !errors.Is(err, ers.ErrInvariantViolation) {
		t.Fatal("expected to unwrap to the invariant sentinel")
	}
}

func TestNewInvariantViolationStringArg(t *testing.T) {
	err := NewInvariantViolation("broken invariant")
	if !errors.Is(err, ers.ErrInvariantViolation) {
		t.Fatal("expected to unwrap to the invariant sentinel")
	}
	if !strings.Contains(err.Error(), "broken invariant") {
		t.Fatalf("expected message to contain the string arg, got %q", err.Error())
	}
}

func TestNewInvariantViolationOtherArg(t *testing.T) {
	err := NewInvariantViolation(42)
	if !errors.Is(err, ers.ErrInvariantViolation) {
		t.Fatal("expected to unwrap to the invariant sentinel")
	}
	if !strings.Contains(err.Error(), "42") {
		t.Fatalf("expected message to contain the value, got %q", err.Error())
	}
}

func TestNewInvariantViolationMultipleArgs(t *testing.T) {
	err := NewInvariantViolation("context", io.EOF)
	if !errors.Is(err, ers.ErrInvariantViolation) {
		t.Fatal("expected to unwrap to the invariant sentinel")
	}
	if !errors.Is(err, io.EOF) {
		t.Fatal("expected to unwrap to the wrapped error arg")
	}
	if !strings.Contains(err.Error(), "context") {
		t.Fatalf("expected message to contain the non-error arg, got %q", err.Error())
	}
}
