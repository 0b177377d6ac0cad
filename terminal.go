package lazy

import (
	"fmt"
	"strings"
)

// ToSlice materializes every element of s, in order, into a new slice.
// ToSlice never invokes fewer than all of s's elements: callers that
// want a bounded read should Take first.
func ToSlice[T any](s Sequence[T]) []T {
	out := []T{}
	s.Each(func(elem T, _ int) bool {
		out = append(out, elem)
		return true
	})
	return out
}

// ForEach drives iteration purely for side effects.
func ForEach[T any](s Sequence[T], fn func(elem T, index int)) {
	s.Each(func(elem T, idx int) bool {
		fn(elem, idx)
		return true
	})
}

// Reduce (aka foldl/inject) folds s from the left, starting from seed;
// an empty s returns seed. ReduceSelf is the unseeded form.
func Reduce[T, A any](s Sequence[T], fn func(acc A, elem T) A, seed A) A {
	acc := seed
	s.Each(func(elem T, _ int) bool {
		acc = fn(acc, elem)
		return true
	})
	return acc
}

// ReduceSelf folds s from the left using its own element type as the
// accumulator, seeding with the first element (foldl with no
// explicit seed). Panics if s is empty.
func ReduceSelf[T any](s Sequence[T], fn func(acc, elem T) T) T {
	var (
		acc     T
		started bool
	)
	s.Each(func(elem T, _ int) bool {
		if !started {
			acc = elem
			started = true
			return true
		}
		acc = fn(acc, elem)
		return true
	})
	if !started {
		panic(ErrEmptyReduce)
	}
	return acc
}

// ReduceRight (aka foldr) folds s from the right, seeding with the
// last element. It materializes s, since the fold necessarily starts
// from the end.
func ReduceRight[T any](s Sequence[T], fn func(acc, elem T) T) T {
	all := ToSlice(s)
	if len(all) == 0 {
		panic(ErrEmptyReduce)
	}
	acc := all[len(all)-1]
	for i := len(all) - 2; i >= 0; i-- {
		acc = fn(acc, all[i])
	}
	return acc
}

// Find (aka detect) returns the first element for which pred returns
// true, short-circuiting the walk of s. ok is false if no element
// matched.
func Find[T any](s Sequence[T], pred func(T, int) bool) (result T, ok bool) {
	s.Each(func(elem T, idx int) bool {
		if pred(elem, idx) {
			result, ok = elem, true
			return false
		}
		return true
	})
	return result, ok
}

// Every (aka all) returns true if pred holds for every element of s,
// defaulting to true on an empty sequence. Short-circuits on the
// first false.
func Every[T any](s Sequence[T], pred func(T, int) bool) bool {
	result := true
	s.Each(func(elem T, idx int) bool {
		if !pred(elem, idx) {
			result = false
			return false
		}
		return true
	})
	return result
}

// Some (aka any) returns true if pred holds for at least one element
// of s, defaulting to false on an empty sequence. Short-circuits on
// the first true.
func Some[T any](s Sequence[T], pred func(T, int) bool) bool {
	result := false
	s.Each(func(elem T, idx int) bool {
		if pred(elem, idx) {
			result = true
			return false
		}
		return true
	})
	return result
}

// Any reports whether s has at least one element; it is Some with no
// predicate.
func Any[T any](s Sequence[T]) bool {
	found := false
	s.Each(func(T, int) bool { found = true; return false })
	return found
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s Sequence[T]) bool { return !Any(s) }

// Count returns the number of elements visited. Unlike Length, Count
// always drives a full Each call; use Length on an Indexable sequence
// to avoid that cost.
func Count[T any](s Sequence[T]) int {
	n := 0
	s.Each(func(T, int) bool { n++; return true })
	return n
}

// IndexOf returns the index of the first element equal to v, or -1.
// The walk short-circuits at the match.
func IndexOf[T comparable](s Sequence[T], v T) int {
	found := -1
	s.Each(func(elem T, idx int) bool {
		if elem == v {
			found = idx
			return false
		}
		return true
	})
	return found
}

// LastIndexOf returns the index of the last element equal to v, or
// -1. Per §4.A it requires a known Length: when s is not already
// Indexable it is materialized first.
func LastIndexOf[T comparable](s Sequence[T], v T) int {
	idx, ok := AsIndexable[T](s)
	if !ok {
		all := ToSlice(s)
		idx = arraySource[T]{data: all}
	}
	n := idx.Length()
	for i := n - 1; i >= 0; i-- {
		if idx.Get(i) == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v occurs anywhere in s.
func Contains[T comparable](s Sequence[T], v T) bool { return IndexOf(s, v) >= 0 }

// Join coerces every element of s to a string (as fmt.Sprint would)
// and concatenates them, inserting delim only between elements.
func Join[T any](s Sequence[T], delim string) string {
	var b strings.Builder
	first := true
	s.Each(func(elem T, _ int) bool {
		if !first {
			b.WriteString(delim)
		}
		first = false
		fmt.Fprint(&b, elem)
		return true
	})
	return b.String()
}
