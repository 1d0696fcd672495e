package orderedkv

// Keys returns a new list-shaped collection of this collection's keys,
// re-indexed 0..n-1.
func (c *Collection[V]) Keys() *Collection[Key] {
	out := New[Key]()
	for _, e := range c.entries {
		out.Set(IntKey(out.Count()), e.key)
	}
	return out
}

// Values returns a new list-shaped collection of this collection's
// values, re-indexed 0..n-1.
func (c *Collection[V]) Values() *Collection[V] {
	out := New[V]()
	for _, e := range c.entries {
		out.Set(IntKey(out.Count()), e.val)
	}
	return out
}

// Filter returns a new collection with the entries for which
// pred(value, key) is true.  Original keys are preserved, the source
// is left untouched.
func (c *Collection[V]) Filter(pred func(V, Key) bool) *Collection[V] {
	out := New[V]()
	for _, e := range c.entries {
		if pred(e.val, e.key) {
			out.Set(e.key, e.val)
		}
	}
	return out
}

// Compact is the predicate-less sibling of Filter: it drops entries
// whose value is empty — the type's zero value, or a string, slice,
// map, or array of length zero.
func (c *Collection[V]) Compact() *Collection[V] {
	return c.Filter(func(v V, _ Key) bool { return !isEmptyValue(v) })
}

// MapValues returns a new collection with the same keys and each
// value replaced by fn(value, key).  For projections that change the
// value type, use the package-level Map function.
func (c *Collection[V]) MapValues(fn func(V, Key) V) *Collection[V] {
	return Map(c, fn)
}

// Map projects a collection into one with the same keys and a new
// value type.  A package-level function because Go methods cannot
// introduce type parameters.
func Map[V, U any](c *Collection[V], fn func(V, Key) U) *Collection[U] {
	out := New[U]()
	for _, e := range c.entries {
		out.Set(e.key, fn(e.val, e.key))
	}
	return out
}

// Reduce folds the values left to right, starting from initial.  Keys
// are not exposed to the callback.
func Reduce[V, R any](c *Collection[V], fn func(R, V) R, initial R) R {
	acc := initial
	for _, e := range c.entries {
		acc = fn(acc, e.val)
	}
	return acc
}

// Find returns the first value, in iteration order, for which pred
// holds.
func (c *Collection[V]) Find(pred func(V) bool) (V, bool) {
	for _, e := range c.entries {
		if pred(e.val) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Some reports whether pred(value, key) holds for at least one entry.
// Stops at the first match.
func (c *Collection[V]) Some(pred func(V, Key) bool) bool {
	for _, e := range c.entries {
		if pred(e.val, e.key) {
			return true
		}
	}
	return false
}

// Every reports whether pred(value, key) holds for all entries.
// Vacuously true when empty; stops at the first failure.
func (c *Collection[V]) Every(pred func(V, Key) bool) bool {
	for _, e := range c.entries {
		if !pred(e.val, e.key) {
			return false
		}
	}
	return true
}

// Each calls fn(value, key) for every entry in iteration order.
func (c *Collection[V]) Each(fn func(V, Key)) {
	for _, e := range c.entries {
		fn(e.val, e.key)
	}
}
