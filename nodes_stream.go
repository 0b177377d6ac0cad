package lazy

// This file holds the streaming operator nodes of §4.F: map, filter,
// take, drop, reverse, and concat. Most implement Each directly over
// their parent; filter over an Indexable parent and reverse over a
// non-Indexable one materialize into a cache instead. The variants
// whose parent is Indexable also implement Get/Length so indexability
// propagates per §4.B.

// Map applies fn over every element of s, changing its element type;
// it is a free function (not a Seq method) because Go methods cannot
// introduce the new type parameter U.
func Map[T, U any](s Sequence[T], fn func(elem T, index int) U) Seq[U] {
	if idx, ok := AsIndexable[T](s); ok {
		return Of[U](indexedMapped[T, U]{parent: idx, fn: fn})
	}
	return Of[U](mapped[T, U]{parent: s, fn: fn})
}

type mapped[T, U any] struct {
	parent Sequence[T]
	fn     func(T, int) U
}

func (m mapped[T, U]) Each(v Visitor[U]) {
	m.parent.Each(func(elem T, idx int) bool { return v(m.fn(elem, idx), idx) })
}

// GetIterator lets a mapped node over a non-indexable parent pull
// lazily, one element at a time, instead of buffering the whole
// parent the way newBufferedIterator would.
func (m mapped[T, U]) GetIterator() Iterator[U] {
	return newMapIterator[T, U](GetIterator[T](m.parent), m.fn)
}

// indexedMapped is the Indexed-Map node of §4.B.
type indexedMapped[T, U any] struct {
	parent Indexable[T]
	fn     func(T, int) U
}

func (m indexedMapped[T, U]) Each(v Visitor[U]) {
	n := m.parent.Length()
	for i := 0; i < n; i++ {
		if !v(m.fn(m.parent.Get(i), i), i) {
			return
		}
	}
}
func (m indexedMapped[T, U]) Get(i int) U { return m.fn(m.parent.Get(i), i) }
func (m indexedMapped[T, U]) Length() int { return m.parent.Length() }

// Filter keeps elements for which pred is true. Over a non-indexable
// parent it is a pure streaming node; over an indexable parent it is
// the Indexed-Filter of §4.B, which caches (on first Each/Get/Length)
// to recover random access.
func (s Seq[T]) Filter(pred func(elem T, index int) bool) Seq[T] {
	if idx, ok := s.indexableCore(); ok {
		return Of[T](&indexedFiltered[T]{parent: idx, pred: pred})
	}
	return Of[T](filtered[T]{parent: s.core, pred: pred})
}

// Reject is Filter with the predicate negated, per §4.A's alias.
func (s Seq[T]) Reject(pred func(elem T, index int) bool) Seq[T] {
	return s.Filter(func(e T, i int) bool { return !pred(e, i) })
}

type filtered[T any] struct {
	parent Sequence[T]
	pred   func(T, int) bool
}

func (f filtered[T]) Each(v Visitor[T]) {
	out := 0
	f.parent.Each(func(elem T, idx int) bool {
		if !f.pred(elem, idx) {
			return true
		}
		ok := v(elem, out)
		out++
		return ok
	})
}

// GetIterator lets a filtered node over a non-indexable parent pull
// lazily, one element at a time, instead of buffering the whole
// parent the way newBufferedIterator would.
func (f filtered[T]) GetIterator() Iterator[T] {
	return newFilterIterator[T](GetIterator[T](f.parent), f.pred)
}

// indexedFiltered scans the parent via Get/Length and caches, so that
// downstream Get/Length calls are served from the materialized
// result, per §4.B.
type indexedFiltered[T any] struct {
	parent Indexable[T]
	pred   func(T, int) bool
	cache  *cache[T]
}

func (f *indexedFiltered[T]) ensure() *cache[T] {
	if f.cache == nil {
		f.cache = newCache(func() []T {
			n := f.parent.Length()
			out := []T{}
			for i := 0; i < n; i++ {
				v := f.parent.Get(i)
				if f.pred(v, i) {
					out = append(out, v)
				}
			}
			return out
		})
	}
	return f.cache
}

func (f *indexedFiltered[T]) Each(v Visitor[T])  { f.ensure().Each(v) }
func (f *indexedFiltered[T]) Get(i int) T        { return f.ensure().Get(i) }
func (f *indexedFiltered[T]) Length() int        { return f.ensure().Length() }

// Take limits s to its first n elements (first(n)/take of §4.A).
func (s Seq[T]) Take(n int) Seq[T] {
	if idx, ok := s.indexableCore(); ok {
		return Of[T](indexedTake[T]{parent: idx, n: n})
	}
	return Of[T](take[T]{parent: s.core, n: n})
}

type take[T any] struct {
	parent Sequence[T]
	n      int
}

func (t take[T]) Each(v Visitor[T]) {
	if t.n <= 0 {
		return
	}
	t.parent.Each(func(elem T, idx int) bool {
		if idx >= t.n {
			return false
		}
		return v(elem, idx)
	})
}

// indexedTake is the Indexed-Take node of §4.B.
type indexedTake[T any] struct {
	parent Indexable[T]
	n      int
}

func (t indexedTake[T]) length() int {
	n := t.parent.Length()
	if n < 0 || t.n < n { // a negative parent length means unbounded
		return t.n
	}
	return n
}
func (t indexedTake[T]) Each(v Visitor[T]) {
	n := t.length()
	for i := 0; i < n; i++ {
		if !v(t.parent.Get(i), i) {
			return
		}
	}
}
func (t indexedTake[T]) Get(i int) T { return t.parent.Get(i) }
func (t indexedTake[T]) Length() int { return t.length() }

// Drop skips the first n elements (default 1 if n is omitted by the
// caller passing 1 directly; rest(n)/drop of §4.A).
func (s Seq[T]) Drop(n int) Seq[T] {
	if idx, ok := s.indexableCore(); ok {
		return Of[T](indexedDrop[T]{parent: idx, n: n})
	}
	return Of[T](dropNode[T]{parent: s.core, n: n})
}

type dropNode[T any] struct {
	parent Sequence[T]
	n      int
}

func (d dropNode[T]) Each(v Visitor[T]) {
	out := 0
	d.parent.Each(func(elem T, idx int) bool {
		if idx < d.n {
			return true
		}
		ok := v(elem, out)
		out++
		return ok
	})
}

// indexedDrop is the Indexed-Drop node of §4.B.
type indexedDrop[T any] struct {
	parent Indexable[T]
	n      int
}

func (d indexedDrop[T]) length() int {
	n := d.parent.Length() - d.n
	if n < 0 {
		return 0
	}
	return n
}
func (d indexedDrop[T]) Each(v Visitor[T]) {
	n := d.length()
	for i := 0; i < n; i++ {
		if !v(d.parent.Get(d.n+i), i) {
			return
		}
	}
}
func (d indexedDrop[T]) Get(i int) T { return d.parent.Get(d.n + i) }
func (d indexedDrop[T]) Length() int { return d.length() }

// Initial is take(length - n); per §9's open question it requires a
// known Length and is unspecified (here: materializes) on a
// non-Indexable parent.
func (s Seq[T]) Initial(n int) Seq[T] {
	idx, ok := s.indexableCore()
	if !ok {
		all := ToSlice[T](s)
		idx = arraySource[T]{data: all}
	}
	return Seq[T]{core: idx}.Take(idx.Length() - n)
}

// Last is reverse().take(n).reverse(), per §4.A and §9's note that a
// bounded tail buffer would be equivalent; this module keeps the
// double-reverse form the spec describes rather than optimizing it,
// since Reverse on an Indexable parent is already O(1) per element.
func (s Seq[T]) Last(n int) Seq[T] {
	return s.Reverse().Take(n).Reverse()
}

// Reverse reverses s: O(1) random access if the parent is Indexable
// (Indexed-Reverse of §4.B), otherwise materializes into a cache.
func (s Seq[T]) Reverse() Seq[T] {
	if idx, ok := s.indexableCore(); ok {
		return Of[T](indexedReverse[T]{parent: idx})
	}
	return Of[T](newCache(func() []T {
		all := ToSlice[T](s)
		out := make([]T, len(all))
		for i, v := range all {
			out[len(all)-1-i] = v
		}
		return out
	}))
}

// indexedReverse is the Indexed-Reverse node of §4.B.
type indexedReverse[T any] struct{ parent Indexable[T] }

func (r indexedReverse[T]) Each(v Visitor[T]) {
	n := r.parent.Length()
	for i := 0; i < n; i++ {
		if !v(r.parent.Get(n-1-i), i) {
			return
		}
	}
}
func (r indexedReverse[T]) Get(i int) T { return r.parent.Get(r.parent.Length() - 1 - i) }
func (r indexedReverse[T]) Length() int { return r.parent.Length() }

// Concat emits s, then each argument in turn (flattened one level),
// per §4.A.
func (s Seq[T]) Concat(others ...Sequence[T]) Seq[T] {
	return Of[T](concatenated[T]{parents: append([]Sequence[T]{s.core}, others...)})
}

type concatenated[T any] struct{ parents []Sequence[T] }

func (c concatenated[T]) Each(v Visitor[T]) {
	idx := 0
	for _, p := range c.parents {
		stopped := false
		p.Each(func(elem T, _ int) bool {
			if !v(elem, idx) {
				stopped = true
				return false
			}
			idx++
			return true
		})
		if stopped {
			return
		}
	}
}
