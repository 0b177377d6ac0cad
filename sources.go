package lazy

import (
	"fmt"
	"reflect"
)

// arraySource is the in-memory ordered-collection adapter (§4.E). Its
// Each loops over the underlying buffer directly (the "fast path" the
// spec calls out for array sources), and Get/Length give it for free
// what cache-based nodes have to materialize.
type arraySource[T any] struct{ data []T }

// FromSlice wraps an existing slice as an Indexable Seq. The slice is
// not copied; per (I1) no operator constructed over the result will
// mutate it, but the caller retains the ability to.
func FromSlice[T any](data []T) Seq[T] { return Of[T](arraySource[T]{data: data}) }

func (a arraySource[T]) Each(v Visitor[T]) {
	for i, elem := range a.data {
		if !v(elem, i) {
			return
		}
	}
}
func (a arraySource[T]) Get(i int) T { return a.data[i] }
func (a arraySource[T]) Length() int { return len(a.data) }

// ToArray is an alias for ToSlice that also performs the defensive
// copy the array source adapter's own ToArray method would: the
// returned slice never aliases a's backing array.
func (a arraySource[T]) ToArray() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// generatedSource is the generated-sequence adapter (§4.E): Get(i)
// calls the generator function. When length is negative the sequence
// is unbounded, and only short-circuiting terminals or Take make it
// iterable to completion (§7, "Unbounded iteration").
type generatedSource[T any] struct {
	gen    func(i int) T
	length int // negative means unbounded
}

// Generate constructs a Sequence whose i-th element is gen(i). With no
// length argument the sequence is unbounded.
func Generate[T any](gen func(i int) T, length ...int) Seq[T] {
	n := -1
	if len(length) > 0 {
		n = length[0]
	}
	return Of[T](generatedSource[T]{gen: gen, length: n})
}

func (g generatedSource[T]) Each(v Visitor[T]) {
	if g.length >= 0 {
		for i := 0; i < g.length; i++ {
			if !v(g.gen(i), i) {
				return
			}
		}
		return
	}
	for i := 0; ; i++ {
		if !v(g.gen(i), i) {
			return
		}
	}
}

// Length implements Indexable; on an unbounded generated sequence it
// returns -1, which Take treats as having no bound.
func (g generatedSource[T]) Get(i int) T { return g.gen(i) }
func (g generatedSource[T]) Length() int { return g.length }

// Range constructs a generated sequence of start + k*step for
// k = 0 .. floor((stop-start)/step)-1. range(stop) uses start 0 and
// step 1, and range(start, stop) uses step 1, mirroring the three call
// forms in §6.
func Range(args ...int) Seq[int] {
	var start, stop, step int
	switch len(args) {
	case 1:
		start, stop, step = 0, args[0], 1
	case 2:
		start, stop, step = args[0], args[1], 1
	case 3:
		start, stop, step = args[0], args[1], args[2]
		if step == 0 {
			step = 1
		}
	default:
		panic(ErrInvalidInput)
	}

	n := 0
	if step > 0 && stop > start {
		n = (stop - start) / step
	} else if step < 0 && stop < start {
		n = (start - stop) / (-step)
	}

	return Generate(func(i int) int { return start + i*step }, n)
}

// Repeat constructs a sequence that yields value forever, or count
// times if count is given.
func Repeat[T any](value T, count ...int) Seq[T] {
	if len(count) > 0 {
		return Generate(func(int) T { return value }, count[0])
	}
	return Generate(func(int) T { return value })
}

// Lazy is the dispatch function from §6: it returns x unchanged if it
// is a Seq[any], KeyedSeq[any] or StringSeq, wraps a string as a
// character sequence, a slice as an array sequence, a map as a keyed
// sequence, and panics for anything else, including a Seq of any
// other element type (the dispatch function is specified only as an
// external collaborator boundary; this is this module's concrete
// resolution of it).
func Lazy(x any) any {
	switch v := x.(type) {
	case Seq[any]:
		return v
	case KeyedSeq[any]:
		return v
	case StringSeq:
		return v
	case string:
		return NewStringSeq(v)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return FromSlice(out)
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[formatMapKey(iter.Key())] = iter.Value().Interface()
		}
		return FromMap(out)
	default:
		panic(ErrInvalidInput)
	}
}

func formatMapKey(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprint(v.Interface())
}
