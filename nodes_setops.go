package lazy

// Without returns a new sequence containing every element of s not
// present in vals, per §4.A's Without node (set difference). It is a
// free function since set membership needs T comparable.
func Without[T comparable](s Sequence[T], vals ...T) Seq[T] {
	drop := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		drop[v] = struct{}{}
	}
	return Of[T](newCache(func() []T {
		out := []T{}
		s.Each(func(elem T, _ int) bool {
			if _, ok := drop[elem]; ok {
				return true
			}
			out = append(out, elem)
			return true
		})
		return out
	}))
}

// Union is concat(args).uniq(), per §4.A.
func Union[T comparable](seqs ...Sequence[T]) Seq[T] {
	if len(seqs) == 0 {
		return Of[T](arraySource[T]{})
	}
	head := Of[T](seqs[0])
	return Unique[T](head.Concat(seqs[1:]...))
}

// Intersection returns the elements of s present in every one of
// others, per §4.A's Intersection node. It is a free function since
// membership testing needs T comparable.
func Intersection[T comparable](s Sequence[T], others ...Sequence[T]) Seq[T] {
	return Of[T](newCache(func() []T {
		sets := make([]map[T]struct{}, len(others))
		for i, o := range others {
			set := map[T]struct{}{}
			o.Each(func(elem T, _ int) bool { set[elem] = struct{}{}; return true })
			sets[i] = set
		}
		out := []T{}
		s.Each(func(elem T, _ int) bool {
			for _, set := range sets {
				if _, ok := set[elem]; !ok {
					return true
				}
			}
			out = append(out, elem)
			return true
		})
		return out
	}))
}

// Compact filters out elements isFalsy considers falsy, per §4.A's
// compact alias over filter. Go has no universal "falsy" notion, so
// the caller supplies the predicate.
func Compact[T any](s Sequence[T], isFalsy func(T) bool) Seq[T] {
	return Of[T](s).Filter(func(elem T, _ int) bool { return !isFalsy(elem) })
}

// Zip emits tuples [e_i, a1_i, a2_i, ...], stopping when s ends; a
// shorter sidecar omits that position from the tuple rather than
// padding it, per §4.A's Zipped node.
func Zip[T any](s Sequence[T], others ...Sequence[T]) Seq[[]T] {
	return Of[[]T](newCache(func() [][]T {
		sidecars := make([][]T, len(others))
		for i, o := range others {
			sidecars[i] = ToSlice[T](o)
		}
		out := [][]T{}
		s.Each(func(elem T, idx int) bool {
			tuple := []T{elem}
			for _, side := range sidecars {
				if idx < len(side) {
					tuple = append(tuple, side[idx])
				}
			}
			out = append(out, tuple)
			return true
		})
		return out
	}))
}

// Flatten recursively inlines nested sequences of T, per §4.A's
// Flattened node. An element is treated as nested when it implements
// Sequence[T] itself; everything else is emitted as a leaf.
func Flatten[T any](s Sequence[T]) Seq[T] {
	return Of[T](newCache(func() []T { return flattenInto(s, nil) }))
}

func flattenInto[T any](s Sequence[T], out []T) []T {
	s.Each(func(elem T, _ int) bool {
		if nested, ok := any(elem).(Sequence[T]); ok {
			out = flattenInto[T](nested, out)
			return true
		}
		out = append(out, elem)
		return true
	})
	return out
}
