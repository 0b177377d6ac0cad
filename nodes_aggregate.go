package lazy

import (
	"cmp"
	"crypto/rand"
	"math/big"
	"sort"
)

// Sort materializes s and total-orders it by less, per §4.A's Sorted
// node. The sort is not required to be stable (§4.A); sort.Slice is
// used rather than sort.SliceStable to match that.
func (s Seq[T]) Sort(less func(a, b T) bool) Seq[T] {
	return Of[T](newCache(func() []T {
		all := ToSlice[T](s)
		sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })
		return all
	}))
}

// SortBy sorts s by comparing keyFn(element) under the default
// ordering policy of §4.A (x == y -> 0, x > y -> 1, else -1), with the
// key evaluated once per side at comparison time. It is a free
// function because Go methods cannot introduce the new type
// parameter K.
func SortBy[T any, K cmp.Ordered](s Sequence[T], keyFn func(T) K) Seq[T] {
	return Of[T](newCache(func() []T {
		all := ToSlice[T](s)
		sort.Slice(all, func(i, j int) bool { return cmp.Compare(keyFn(all[i]), keyFn(all[j])) < 0 })
		return all
	}))
}

// Shuffle returns a uniformly-random permutation of s (Fisher-Yates
// over a cached copy), per §4.A's Shuffled node. §9 flags the
// original shuffle's swap-index expression as a bug (biased, not a
// uniform permutation); this implementation uses the textbook
// algorithm rather than reproducing that bug. crypto/rand backs the
// draw since no third-party PRNG appears anywhere in the retrieval
// pack and a biased math/rand draw would reintroduce exactly the kind
// of subtly-wrong randomness §9 calls out.
func (s Seq[T]) Shuffle() Seq[T] {
	return Of[T](newCache(func() []T {
		all := ToSlice[T](s)
		for i := len(all) - 1; i > 0; i-- {
			j := randIntn(i + 1)
			all[i], all[j] = all[j], all[i]
		}
		return all
	}))
}

func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// GroupBy materializes s into key -> elements groups keyed by
// keyFn(element), per §4.A's Grouped node. Keys are strings, matching
// this module's keyed-sequence key type throughout. s is walked in
// full when GroupBy is called, not when the result is first iterated.
func GroupBy[T any](s Sequence[T], keyFn func(T) string) KeyedSeq[[]T] {
	groups := map[string][]T{}
	order := []string{}
	s.Each(func(elem T, _ int) bool {
		key := keyFn(elem)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], elem)
		return true
	})
	pairs := make([]Pair[[]T], len(order))
	for i, key := range order {
		pairs[i] = Pair[[]T]{Key: key, Value: groups[key]}
	}
	return OfKeyed[[]T](orderedPairSource[[]T]{pairs: pairs})
}

// CountBy materializes s into key -> count of elements keyed by
// keyFn(element), per §4.A's Counted node. Like GroupBy, it walks s in
// full when called.
func CountBy[T any](s Sequence[T], keyFn func(T) string) KeyedSeq[int] {
	counts := map[string]int{}
	order := []string{}
	s.Each(func(elem T, _ int) bool {
		key := keyFn(elem)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
		return true
	})
	pairs := make([]Pair[int], len(order))
	for i, key := range order {
		pairs[i] = Pair[int]{Key: key, Value: counts[key]}
	}
	return OfKeyed[int](orderedPairSource[int]{pairs: pairs})
}

// orderedPairSource replays a fixed, pre-materialized list of pairs in
// the order they were built — used by GroupBy and CountBy, whose
// results are naturally insertion-ordered rather than map-ordered.
type orderedPairSource[T any] struct{ pairs []Pair[T] }

func (o orderedPairSource[T]) EachPair(v KeyedVisitor[T]) {
	for _, p := range o.pairs {
		if !v(p.Value, p.Key) {
			return
		}
	}
}

// uniqueSmallThreshold and uniqueLargeThreshold are the size
// boundaries of §4.B's adaptive uniqueness strategy.
const (
	uniqueSmallThreshold = 40
	uniqueLargeThreshold = 800
)

// Unique keeps the first occurrence of each distinct element of s (by
// ==), per §4.A's Unique node, preserving first-occurrence order. When
// s is Indexable its size is known up front and selects among the
// three strategies of §4.B; a non-Indexable parent always uses the
// set-cache strategy, since its size isn't known without
// materializing it first anyway. It is a free function because
// uniqueness requires T to be comparable, a constraint a Seq[T] method
// cannot add beyond what the receiver already carries.
func Unique[T comparable](s Sequence[T]) Seq[T] {
	if idx, ok := AsIndexable[T](s); ok {
		n := idx.Length()
		switch {
		case n < uniqueSmallThreshold:
			return Of[T](uniqueScanNode[T]{parent: idx})
		case n < uniqueLargeThreshold:
			return Of[T](newCache(func() []T { return uniqueByArrayCache(idx) }))
		default:
			return Of[T](newCache(func() []T { return uniqueBySetCache(idx) }))
		}
	}
	return Of[T](newCache(func() []T {
		out := []T{}
		seen := map[T]struct{}{}
		s.Each(func(elem T, _ int) bool {
			if _, ok := seen[elem]; ok {
				return true
			}
			seen[elem] = struct{}{}
			out = append(out, elem)
			return true
		})
		return out
	}))
}

// uniqueScanNode implements the n < 40 strategy: no cache, each
// element checked against the already-emitted prefix via a linear
// scan (containsBefore).
type uniqueScanNode[T comparable] struct{ parent Indexable[T] }

func (u uniqueScanNode[T]) Each(v Visitor[T]) {
	emitted := []T{}
	n := u.parent.Length()
	out := 0
	for i := 0; i < n; i++ {
		elem := u.parent.Get(i)
		if containsBefore(emitted, elem) {
			continue
		}
		emitted = append(emitted, elem)
		if !v(elem, out) {
			return
		}
		out++
	}
}

func containsBefore[T comparable](emitted []T, v T) bool {
	for _, e := range emitted {
		if e == v {
			return true
		}
	}
	return false
}

func uniqueByArrayCache[T comparable](idx Indexable[T]) []T {
	n := idx.Length()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v := idx.Get(i)
		if !containsBefore(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func uniqueBySetCache[T comparable](idx Indexable[T]) []T {
	n := idx.Length()
	out := make([]T, 0, n)
	seen := make(map[T]struct{}, n)
	for i := 0; i < n; i++ {
		v := idx.Get(i)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
