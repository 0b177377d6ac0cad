package lazy

import "reflect"

// Where filters s to elements whose fields match every entry in
// props (§4.A's where(props), grounded on spec scenario 5: records
// filtered by field equality). Field names are matched by Go struct
// field name, not by a tag; pointers and interfaces are dereferenced
// before comparison. No struct-introspection library in this module's
// retrieval pack offers generic field-by-name equality on arbitrary
// structs (mapstructure and yaml-jsonpath are decode- and
// YAML-specific respectively), so this uses the standard library's
// reflect package directly.
func Where[T any](s Sequence[T], props map[string]any) Seq[T] {
	return Of[T](s).Filter(func(elem T, _ int) bool {
		rv := reflect.Indirect(reflect.ValueOf(elem))
		if rv.Kind() != reflect.Struct {
			return false
		}
		for name, want := range props {
			field := rv.FieldByName(name)
			if !field.IsValid() || field.Interface() != want {
				return false
			}
		}
		return true
	})
}

// Pluck maps s to the value of the named field on each element
// (§4.A's pluck(name)). A missing or mistyped field yields V's zero
// value.
func Pluck[T, V any](s Sequence[T], name string) Seq[V] {
	return Map[T, V](s, func(elem T, _ int) V {
		rv := reflect.Indirect(reflect.ValueOf(elem))
		if rv.Kind() != reflect.Struct {
			var zero V
			return zero
		}
		field := rv.FieldByName(name)
		if !field.IsValid() {
			var zero V
			return zero
		}
		out, ok := field.Interface().(V)
		if !ok {
			var zero V
			return zero
		}
		return out
	})
}

// Invoke maps s to the result of calling the named nullary method on
// each element (§4.A's invoke(name)).
func Invoke[T, V any](s Sequence[T], name string) Seq[V] {
	return Map[T, V](s, func(elem T, _ int) V {
		var zero V
		rv := reflect.ValueOf(elem)
		method := rv.MethodByName(name)
		if !method.IsValid() {
			return zero
		}
		results := method.Call(nil)
		if len(results) == 0 {
			return zero
		}
		out, ok := results[0].Interface().(V)
		if !ok {
			return zero
		}
		return out
	})
}
