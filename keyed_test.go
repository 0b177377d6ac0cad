package lazy

import "testing"

func TestFromMapGetKeysValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	k := FromMap(m)
	v, ok := k.Get("b")
	if !ok || v != 2 {
		t.Fatalf("expected b=2, got %d ok=%v", v, ok)
	}
	if _, ok := k.Get("z"); ok {
		t.Fatal("expected absent key to report ok=false")
	}
	if len(k.Keys()) != 3 || len(k.Values()) != 3 {
		t.Fatalf("unexpected key/value counts: %d/%d", len(k.Keys()), len(k.Values()))
	}
	obj := k.ToObject()
	if len(obj) != 3 || obj["a"] != 1 {
		t.Fatalf("unexpected ToObject result: %v", obj)
	}
}

func TestKeyedSeqEachAdaptsToSequence(t *testing.T) {
	k := FromMap(map[string]int{"x": 10})
	var pairs []Pair[int]
	k.Each(func(p Pair[int], _ int) bool {
		pairs = append(pairs, p)
		return true
	})
	if len(pairs) != 1 || pairs[0].Key != "x" || pairs[0].Value != 10 {
		t.Fatalf("unexpected pairs: %v", pairs)
	}
}

func TestAssign(t *testing.T) {
	base := FromMap(map[string]int{"a": 1, "b": 2})
	overlay := FromMap(map[string]int{"b": 20, "c": 30})
	merged := base.Assign(overlay)
	obj := merged.ToObject()
	if obj["a"] != 1 || obj["b"] != 20 || obj["c"] != 30 {
		t.Fatalf("unexpected assign result: %v", obj)
	}
}

func TestDefaults(t *testing.T) {
	base := FromMap(map[string]int{"a": 1})
	withDefaults := base.Defaults(map[string]int{"a": 99, "b": 2})
	obj := withDefaults.ToObject()
	if obj["a"] != 1 || obj["b"] != 2 {
		t.Fatalf("unexpected defaults result: %v", obj)
	}
}

func TestInvert(t *testing.T) {
	k := FromMap(map[string]int{"a": 1, "b": 2})
	inverted := Invert[int](k, func(v int) string {
		if v == 1 {
			return "one"
		}
		return "two"
	})
	v, ok := inverted.Get("one")
	if !ok || v != "a" {
		t.Fatalf("unexpected invert result for 'one': %v ok=%v", v, ok)
	}
}

func TestPickOmit(t *testing.T) {
	k := FromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	picked := k.Pick("a", "c").ToObject()
	if len(picked) != 2 || picked["a"] != 1 || picked["c"] != 3 {
		t.Fatalf("unexpected pick result: %v", picked)
	}
	omitted := k.Omit("a").ToObject()
	if len(omitted) != 2 {
		t.Fatalf("unexpected omit result: %v", omitted)
	}
	if _, ok := omitted["a"]; ok {
		t.Fatal("expected 'a' to be omitted")
	}
}

func TestFunctions(t *testing.T) {
	k := FromMap(map[string]any{
		"greet": func() string { return "hi" },
		"count": 42,
	})
	callables := Functions[any](k, func(v any) bool {
		_, ok := v.(func() string)
		return ok
	})
	if len(callables) != 1 || callables[0] != "greet" {
		t.Fatalf("unexpected callables: %v", callables)
	}
}
