package lazy

import "testing"

func TestWithout(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})
	got := ToSlice[int](Without[int](s, 2, 4))
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("unexpected without result: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected without order: %v", got)
		}
	}
}

func TestUnion(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{3, 4, 5})
	got := ToSlice[int](Union[int](a, b))
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("unexpected union result: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected union order: %v", got)
		}
	}
}

func TestIntersection(t *testing.T) {
	a := FromSlice([]int{1, 2, 3, 4})
	b := FromSlice([]int{2, 3, 5})
	c := FromSlice([]int{2, 3, 6})
	got := ToSlice[int](Intersection[int](a, b, c))
	want := []int{2, 3}
	if len(got) != len(want) {
		t.Fatalf("unexpected intersection result: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected intersection order: %v", got)
		}
	}
}

func TestCompact(t *testing.T) {
	s := FromSlice([]int{0, 1, 0, 2, 0, 3})
	got := ToSlice[int](Compact[int](s, func(v int) bool { return v == 0 }))
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("unexpected compact result: %v", got)
	}
}

func TestZipEqualLength(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{10, 20, 30})
	got := ToSlice[[]int](Zip[int](a, b))
	if len(got) != 3 {
		t.Fatalf("expected 3 tuples, got %d", len(got))
	}
	if got[0][0] != 1 || got[0][1] != 10 {
		t.Fatalf("unexpected first tuple: %v", got[0])
	}
}

func TestZipShorterSidecarOmitsPosition(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{10, 20})
	got := ToSlice[[]int](Zip[int](a, b))
	if len(got) != 3 {
		t.Fatalf("expected 3 tuples (one per element of primary), got %d", len(got))
	}
	if len(got[2]) != 1 || got[2][0] != 3 {
		t.Fatalf("expected shorter sidecar to omit its position in the last tuple: %v", got[2])
	}
}

func TestFlatten(t *testing.T) {
	// Flatten detects nesting by type-asserting each element of T to
	// Sequence[T] itself; with T=any that includes both leaves (plain
	// values) and nested sequences built over any.
	nested := FromSlice([]any{
		1,
		Of[any](arraySource[any]{data: []any{2, 3}}),
		4,
		Of[any](arraySource[any]{data: []any{5, Of[any](arraySource[any]{data: []any{6, 7}})}}),
	})
	got := ToSlice[any](Flatten[any](nested))
	want := []any{1, 2, 3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("unexpected flatten result: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected flatten order: %v", got)
		}
	}
}
