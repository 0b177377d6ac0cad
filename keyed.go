package lazy

// Pair is one (key, value) element of a keyed sequence (§3's keyed
// sequence element). ToSlice over a KeyedSeq (or its ToPairs) yields
// these in enumeration order.
type Pair[T any] struct {
	Key   string
	Value T
}

// KeyedVisitor is the keyed counterpart of Visitor: it is called with
// the value first and the key second, per §3 ("each yields (value,
// key)"), and honors the same stop-sentinel contract.
type KeyedVisitor[T any] func(value T, key string) bool

// KeyedSequence is the abstract producer behind the keyed
// specialization (§4.C). mapSource, and every keyed operator node
// below, implement it.
type KeyedSequence[T any] interface {
	EachPair(KeyedVisitor[T])
}

// KeyedSeq wraps a KeyedSequence and exposes the keyed operator
// surface (assign, defaults, invert, pick, omit, keys, values,
// functions/methods, toObject). Like Seq, its zero value is not
// usable.
type KeyedSeq[T any] struct{ core KeyedSequence[T] }

// OfKeyed wraps an arbitrary KeyedSequence in a KeyedSeq.
func OfKeyed[T any](s KeyedSequence[T]) KeyedSeq[T] { return KeyedSeq[T]{core: s} }

// FromMap constructs a KeyedSeq over an in-memory map. Enumeration
// order is the order reflect/range would produce, which Go leaves
// unspecified across calls; callers needing a stable order should
// sort the result of Keys first.
func FromMap[T any](m map[string]T) KeyedSeq[T] { return OfKeyed[T](mapSource[T]{data: m}) }

func (k KeyedSeq[T]) Unwrap() KeyedSequence[T]  { return k.core }
func (k KeyedSeq[T]) EachPair(v KeyedVisitor[T]) { k.core.EachPair(v) }

// Each adapts EachPair to the push Sequence protocol so a KeyedSeq can
// be passed to any free function over Sequence[Pair[T]].
func (k KeyedSeq[T]) Each(v Visitor[Pair[T]]) {
	i := 0
	k.core.EachPair(func(value T, key string) bool {
		ok := v(Pair[T]{Key: key, Value: value}, i)
		i++
		return ok
	})
}

// Get looks up a single key, per §3's keyed get(key); ok is false if
// the key is absent.
func (k KeyedSeq[T]) Get(key string) (result T, ok bool) {
	k.core.EachPair(func(value T, k2 string) bool {
		if k2 == key {
			result, ok = value, true
			return false
		}
		return true
	})
	return result, ok
}

// Keys returns every key, in enumeration order.
func (k KeyedSeq[T]) Keys() []string {
	out := []string{}
	k.core.EachPair(func(_ T, key string) bool { out = append(out, key); return true })
	return out
}

// Values returns every value, in enumeration order.
func (k KeyedSeq[T]) Values() []T {
	out := []T{}
	k.core.EachPair(func(value T, _ string) bool { out = append(out, value); return true })
	return out
}

// ToObject materializes the sequence into a map, per §4.A's toObject
// terminal.
func (k KeyedSeq[T]) ToObject() map[string]T {
	out := map[string]T{}
	k.core.EachPair(func(value T, key string) bool { out[key] = value; return true })
	return out
}

// ToPairs is the keyed analogue of toArray (§9's "toArray/pairs for
// keyed" alias).
func (k KeyedSeq[T]) ToPairs() []Pair[T] { return ToSlice[Pair[T]](k) }

// mapSource is the in-memory keyed adapter (§4.E's Object wrapper).
type mapSource[T any] struct{ data map[string]T }

func (m mapSource[T]) EachPair(v KeyedVisitor[T]) {
	for key, value := range m.data {
		if !v(value, key) {
			return
		}
	}
}

// assignSource implements the assign(other) operator (§4.C): every
// key of other is emitted (other wins), followed by every key of
// parent not already seen.
type assignSource[T any] struct {
	parent KeyedSequence[T]
	other  KeyedSequence[T]
}

// Assign returns a new KeyedSeq where, for every key present in other,
// other's value wins; every remaining key of k keeps its own value.
func (k KeyedSeq[T]) Assign(other KeyedSequence[T]) KeyedSeq[T] {
	return OfKeyed[T](assignSource[T]{parent: k.core, other: other})
}

func (a assignSource[T]) EachPair(v KeyedVisitor[T]) {
	seen := map[string]struct{}{}
	stopped := false
	a.other.EachPair(func(value T, key string) bool {
		seen[key] = struct{}{}
		if !v(value, key) {
			stopped = true
			return false
		}
		return true
	})
	if stopped {
		return
	}
	a.parent.EachPair(func(value T, key string) bool {
		if _, ok := seen[key]; ok {
			return true
		}
		return v(value, key)
	})
}

// defaultsSource implements the defaults(d) operator (§4.C).
type defaultsSource[T any] struct {
	parent   KeyedSequence[T]
	fallback map[string]T
}

// Defaults returns a new KeyedSeq that emits every (key, value) of k
// unchanged, then emits fallback[key] for every key of fallback not
// already present in k.
func (k KeyedSeq[T]) Defaults(fallback map[string]T) KeyedSeq[T] {
	return OfKeyed[T](defaultsSource[T]{parent: k.core, fallback: fallback})
}

func (d defaultsSource[T]) EachPair(v KeyedVisitor[T]) {
	set := map[string]struct{}{}
	stopped := false
	d.parent.EachPair(func(value T, key string) bool {
		set[key] = struct{}{}
		if !v(value, key) {
			stopped = true
			return false
		}
		return true
	})
	if stopped {
		return
	}
	for key, value := range d.fallback {
		if _, ok := set[key]; ok {
			continue
		}
		if !v(value, key) {
			return
		}
	}
}

// invertedSource implements the invert operator (§4.C): swaps key and
// value, which requires the value type to be stringifiable as a key,
// hence the toKey conversion function Invert below takes rather than
// a constraint on the source type itself.
type invertedSource struct{ pairs []Pair[string] }

func (iv invertedSource) EachPair(v KeyedVisitor[string]) {
	for _, p := range iv.pairs {
		if !v(p.Value, p.Key) {
			return
		}
	}
}

// Invert swaps every (value, key) to (key, value); toKey converts a
// value to the string it becomes a key under. k is walked in full when
// Invert is called, not when the result is first iterated.
func Invert[T any](k KeyedSeq[T], toKey func(T) string) KeyedSeq[string] {
	pairs := []Pair[string]{}
	k.core.EachPair(func(value T, key string) bool {
		pairs = append(pairs, Pair[string]{Key: toKey(value), Value: key})
		return true
	})
	return OfKeyed[string](invertedSource{pairs: pairs})
}

// Pick returns a new KeyedSeq containing only the given keys.
func (k KeyedSeq[T]) Pick(keys ...string) KeyedSeq[T] {
	want := make(map[string]struct{}, len(keys))
	for _, kk := range keys {
		want[kk] = struct{}{}
	}
	return OfKeyed[T](filteredKeyedSource[T]{parent: k.core, keep: func(key string) bool {
		_, ok := want[key]
		return ok
	}})
}

// Omit returns a new KeyedSeq excluding the given keys.
func (k KeyedSeq[T]) Omit(keys ...string) KeyedSeq[T] {
	drop := make(map[string]struct{}, len(keys))
	for _, kk := range keys {
		drop[kk] = struct{}{}
	}
	return OfKeyed[T](filteredKeyedSource[T]{parent: k.core, keep: func(key string) bool {
		_, ok := drop[key]
		return !ok
	}})
}

type filteredKeyedSource[T any] struct {
	parent KeyedSequence[T]
	keep   func(key string) bool
}

func (f filteredKeyedSource[T]) EachPair(v KeyedVisitor[T]) {
	f.parent.EachPair(func(value T, key string) bool {
		if !f.keep(key) {
			return true
		}
		return v(value, key)
	})
}

// Functions filters a KeyedSeq of functions down to the keys whose
// value is callable, per §4.C's functions/methods operator, then
// projects the keys (the method-name form). isCallable lets callers
// supply their own "is this a function" test, since Go has no single
// runtime predicate for it across arbitrary T.
func Functions[T any](k KeyedSeq[T], isCallable func(T) bool) []string {
	out := []string{}
	k.core.EachPair(func(value T, key string) bool {
		if isCallable(value) {
			out = append(out, key)
		}
		return true
	})
	return out
}
