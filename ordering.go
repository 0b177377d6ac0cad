package lazy

import "cmp"

// Numeric constrains the element types Sum accepts. No third-party
// numeric-constraint package appears anywhere in the retrieval pack,
// so this mirrors the standard library's own unexported shape for
// golang.org/x/exp/constraints.Ordered's numeric subset.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds every element of s, seeded at zero, per §4.A.
func Sum[T Numeric](s Sequence[T]) T {
	var total T
	s.Each(func(elem T, _ int) bool {
		total += elem
		return true
	})
	return total
}

// Min returns the smallest element of s under less, and whether s had
// any elements at all.
func Min[T any](s Sequence[T], less func(a, b T) bool) (result T, ok bool) {
	s.Each(func(elem T, _ int) bool {
		if !ok || less(elem, result) {
			result, ok = elem, true
		}
		return true
	})
	return result, ok
}

// Max returns the largest element of s under less.
func Max[T any](s Sequence[T], less func(a, b T) bool) (result T, ok bool) {
	s.Each(func(elem T, _ int) bool {
		if !ok || less(result, elem) {
			result, ok = elem, true
		}
		return true
	})
	return result, ok
}

// MinOrdered and MaxOrdered are Min/Max specialized for cmp.Ordered
// element types, using the default "x == y -> 0, x > y -> 1, else -1"
// comparator from §4.A.
func MinOrdered[T cmp.Ordered](s Sequence[T]) (T, bool) {
	return Min(s, func(a, b T) bool { return cmp.Compare(a, b) < 0 })
}

func MaxOrdered[T cmp.Ordered](s Sequence[T]) (T, bool) {
	return Max(s, func(a, b T) bool { return cmp.Compare(a, b) < 0 })
}

// SortedIndex performs a binary search for v in s, under less. s must
// be Indexable and assumed sorted ascending under less; on unsorted
// input the result is unspecified but the search always terminates.
func SortedIndex[T any](s Sequence[T], v T, less func(a, b T) bool) int {
	idx, ok := AsIndexable[T](s)
	if !ok {
		all := ToSlice(s)
		idx = arraySource[T]{data: all}
	}

	lo, hi := 0, idx.Length()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(idx.Get(mid), v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
