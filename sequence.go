// Package lazy is a uniform, composable interface over "zero or more
// consecutive elements" drawn from slices, maps, strings, generator
// functions, chunked streams, or HTTP response bodies.
//
// Pipelines are assembled by chaining Seq methods (Filter, Sort,
// Concat, Take, Drop, Reverse, ...) and free functions (Map, GroupBy,
// Unique, Zip, Flatten, ...) without touching any source element; work
// happens only when a terminal operation (ToSlice, Reduce, Find, Sum,
// Join, IndexOf, ...) is invoked, and only as much of it as the
// terminal requires. The exceptions are GroupBy, CountBy, Invert, and
// Initial over a non-Indexable parent, which walk their input when
// they are called.
package lazy

// Visitor is called once per element during iteration, receiving the
// element and its zero-based index. Returning false stops iteration
// early; this is the "stop sentinel" referenced throughout this
// package's documentation. A Visitor must not be retained or called
// after the Each call that invoked it returns.
type Visitor[T any] func(elem T, index int) bool

// Sequence is the abstract producer every operator and terminal in
// this package operates on. Each implementation visits its elements
// in a single, well-defined order and honors the stop sentinel
// returned from the Visitor.
//
// Re-entrancy: calling Each twice on the same Sequence must produce
// the same elements in the same order, unless the underlying source
// itself changed between calls (e.g. a mutated slice backing an array
// source). Operator nodes never mutate their parent, so a pipeline
// built once is safe to run to completion more than once.
type Sequence[T any] interface {
	Each(Visitor[T])
}

// Indexable is implemented by sequences with O(1) random access and a
// length known without full iteration. Array, string and several
// operator nodes (map, filter, reverse, take, drop, when their parent
// is itself Indexable) implement this.
type Indexable[T any] interface {
	Sequence[T]
	Get(i int) T
	Length() int
}

// IteratorSource is implemented by sequences with their own pull-style
// iteration. GetIterator (which Async drives its parent through)
// prefers it when present.
type IteratorSource[T any] interface {
	Sequence[T]
	GetIterator() Iterator[T]
}

// Seq wraps a Sequence and exposes the full set of non-terminal
// (chaining) operators from §4.A of the sequence specification that do
// not change the element type. Type-changing operators (Map, GroupBy,
// CountBy, Zip, Invert, ...) are free functions because Go methods
// cannot introduce new type parameters.
//
// The zero value of Seq is not usable; construct one with Of or one of the package-level source constructors (Generate, Range,
// Repeat, FromSlice, ...).
type Seq[T any] struct{ core Sequence[T] }

// Of wraps an arbitrary Sequence implementation in a Seq, making the
// full chaining surface available over it.
func Of[T any](s Sequence[T]) Seq[T] {
	if existing, ok := s.(Seq[T]); ok {
		return existing
	}
	return Seq[T]{core: s}
}

// Unwrap returns the Sequence backing this Seq, useful when passing it
// to a free function that expects a bare Sequence.
func (s Seq[T]) Unwrap() Sequence[T] { return s.core }

// Each implements Sequence by delegating to the wrapped core.
func (s Seq[T]) Each(v Visitor[T]) { s.core.Each(v) }

// indexableCore returns the wrapped core as an Indexable, if it
// implements the capability.
func (s Seq[T]) indexableCore() (Indexable[T], bool) {
	idx, ok := s.core.(Indexable[T])
	return idx, ok
}

// Get and Length are present on Seq unconditionally so that calling
// code can attempt random access; they panic (a method call on a nil
// interface) if the wrapped core is not Indexable. Use
// AsIndexable to check first.
func (s Seq[T]) Get(i int) T { idx, _ := s.indexableCore(); return idx.Get(i) }
func (s Seq[T]) Length() int { idx, _ := s.indexableCore(); return idx.Length() }

// AsIndexable reports whether this Seq's backing sequence supports
// O(1) random access, returning the Indexable view when it does.
func AsIndexable[T any](s Sequence[T]) (Indexable[T], bool) {
	if w, ok := s.(Seq[T]); ok {
		return w.indexableCore()
	}
	idx, ok := s.(Indexable[T])
	return idx, ok
}

// GetIterator produces a pull Iterator over s: the sequence's own
// iterator if it implements IteratorSource, an index-walking iterator
// if it is Indexable, and otherwise a buffered iterator that
// materializes s via Each.
func GetIterator[T any](s Sequence[T]) Iterator[T] {
	if w, ok := s.(Seq[T]); ok {
		s = w.core
	}
	if src, ok := s.(IteratorSource[T]); ok {
		return src.GetIterator()
	}
	if idx, ok := s.(Indexable[T]); ok {
		return newSliceIterator(idx)
	}
	return newBufferedIterator(s)
}
