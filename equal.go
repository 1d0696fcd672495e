package orderedkv

import "reflect"

// strictEqual is the value comparison behind Contains, KeyOf, and
// RemoveValue.  No coercion: the dynamic types must be identical.
// Reference kinds (pointers, maps, slices, channels, funcs) compare
// by identity; comparable value kinds compare by value.  Uncomparable
// value types are never equal — their identity is not observable.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Len() == vb.Len() && (va.Len() == 0 || va.Pointer() == vb.Pointer())
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// isEmptyValue reports "empty" in the truthiness sense used by
// Compact: nil, the type's zero value, or a container of length zero.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return rv.IsZero()
}
