// Package orderedkv implements an insertion-ordered key/value
// collection with array-key semantics: keys are integers or strings,
// values are any type.
//
// A Collection remembers the order entries were inserted in and
// exposes it through iteration, First/Last, and the derived
// collections produced by Keys, Values, Filter, MapValues, and
// Sorted.  Derived collections are independent copies — mutating one
// never affects its source.
//
// The collection is not safe for concurrent use.  Callers sharing an
// instance across goroutines must synchronize externally.
package orderedkv

import (
	"fmt"
	"iter"
)

type entry[V any] struct {
	key Key
	val V
}

// Pair is an explicit key/value pair for building collections.
type Pair[V any] struct {
	Key   Key
	Value V
}

// Collection is an insertion-ordered mapping from Key to V.
// Use New, FromPairs, FromSlice, or Collect to build one; the zero
// value is also an empty, usable collection.
type Collection[V any] struct {
	entries []entry[V]
	index   map[Key]int // key -> position in entries
}

// New returns an empty collection.
func New[V any]() *Collection[V] {
	return &Collection[V]{index: make(map[Key]int)}
}

// FromPairs builds a collection from explicit key/value pairs,
// preserving pair order.  A repeated key overwrites the earlier value
// but keeps its original position.
func FromPairs[V any](pairs ...Pair[V]) *Collection[V] {
	c := New[V]()
	for _, p := range pairs {
		c.Set(p.Key, p.Value)
	}
	return c
}

// FromSlice builds a list-shaped collection: values keyed by their
// 0-based position.
func FromSlice[V any](values []V) *Collection[V] {
	c := New[V]()
	for i, v := range values {
		c.Set(IntKey(i), v)
	}
	return c
}

// Collect builds a collection from any key/value sequence.
func Collect[V any](seq iter.Seq2[Key, V]) *Collection[V] {
	c := New[V]()
	for k, v := range seq {
		c.Set(k, v)
	}
	return c
}

func (c *Collection[V]) ensure() {
	if c.index == nil {
		c.index = make(map[Key]int)
	}
}

// Set inserts or overwrites the value at key and returns the receiver
// for chaining.  An existing key keeps its position; a new key is
// appended at the end.  Set never fails — unlike Add, it accepts any
// key on any collection shape.
func (c *Collection[V]) Set(key Key, value V) *Collection[V] {
	if key == nil {
		panic("orderedkv: nil key in Set; use Add to append")
	}
	c.ensure()
	key = canonicalKey(key)
	if i, ok := c.index[key]; ok {
		c.entries[i].val = value
		return c
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry[V]{key: key, val: value})
	return c
}

// Add appends values at the next sequential integer keys.  Add only
// works on list-shaped collections (keys exactly 0..n-1); on any
// other shape it returns ERR_NOT_LIST and leaves the collection
// unchanged.
func (c *Collection[V]) Add(values ...V) error {
	if !c.IsList() {
		return newErr(ErrNotList, "keys are not a contiguous 0-based sequence; use Set with an explicit key")
	}
	c.ensure()
	for _, v := range values {
		k := IntKey(len(c.entries))
		c.index[k] = len(c.entries)
		c.entries = append(c.entries, entry[V]{key: k, val: v})
	}
	return nil
}

// Remove deletes the entry at key and returns the removed value.
// Removing an absent key is a no-op reported through the second
// return value.  Remaining keys keep their values and relative order;
// integer keys are not renumbered.
func (c *Collection[V]) Remove(key Key) (V, bool) {
	var zero V
	if key == nil {
		return zero, false
	}
	key = canonicalKey(key)
	i, ok := c.index[key]
	if !ok {
		return zero, false
	}
	v := c.entries[i].val
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].key] = j
	}
	return v, true
}

// RemoveValue deletes the first entry whose value is strictly equal
// to value and reports whether a removal happened.
func (c *Collection[V]) RemoveValue(value V) bool {
	for _, e := range c.entries {
		if strictEqual(e.val, value) {
			c.Remove(e.key)
			return true
		}
	}
	return false
}

// Clear empties the collection in place.
func (c *Collection[V]) Clear() {
	c.entries = nil
	c.index = make(map[Key]int)
}

// Get returns the value at key.  An absent key is ERR_KEY_NOT_FOUND.
func (c *Collection[V]) Get(key Key) (V, error) {
	var zero V
	if key == nil {
		return zero, newErr(ErrKeyNotFound, "nil key")
	}
	key = canonicalKey(key)
	if i, ok := c.index[key]; ok {
		return c.entries[i].val, nil
	}
	return zero, newErr(ErrKeyNotFound, fmt.Sprintf("key %q not found", key.String()))
}

// ContainsKey reports whether key is present.
func (c *Collection[V]) ContainsKey(key Key) bool {
	if key == nil {
		return false
	}
	_, ok := c.index[canonicalKey(key)]
	return ok
}

// Contains reports whether any entry's value is strictly equal to
// value.  Strict means no coercion: the dynamic types must match, and
// reference values (pointers, maps, slices, channels, funcs) compare
// by identity, not contents.
func (c *Collection[V]) Contains(value V) bool {
	_, ok := c.KeyOf(value)
	return ok
}

// KeyOf returns the key of the first entry whose value is strictly
// equal to value.
func (c *Collection[V]) KeyOf(value V) (Key, bool) {
	for _, e := range c.entries {
		if strictEqual(e.val, value) {
			return e.key, true
		}
	}
	return nil, false
}

// IsEmpty reports whether the collection has no entries.
func (c *Collection[V]) IsEmpty() bool { return len(c.entries) == 0 }

// Count returns the number of entries.
func (c *Collection[V]) Count() int { return len(c.entries) }

// IsList reports whether the keys are exactly the integers 0..n-1 in
// order.  An empty collection is a list.
func (c *Collection[V]) IsList() bool {
	for i, e := range c.entries {
		k, ok := e.key.(IntKey)
		if !ok || int64(k) != int64(i) {
			return false
		}
	}
	return true
}

// FirstKey returns the first key in iteration order.
func (c *Collection[V]) FirstKey() (Key, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[0].key, true
}

// LastKey returns the last key in iteration order.
func (c *Collection[V]) LastKey() (Key, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[len(c.entries)-1].key, true
}

// First returns the first value in iteration order.
func (c *Collection[V]) First() (V, bool) {
	if len(c.entries) == 0 {
		var zero V
		return zero, false
	}
	return c.entries[0].val, true
}

// Last returns the last value in iteration order.
func (c *Collection[V]) Last() (V, bool) {
	if len(c.entries) == 0 {
		var zero V
		return zero, false
	}
	return c.entries[len(c.entries)-1].val, true
}

// Clone returns an independent copy with the same entries in the same
// order.
func (c *Collection[V]) Clone() *Collection[V] {
	out := &Collection[V]{
		entries: make([]entry[V], len(c.entries)),
		index:   make(map[Key]int, len(c.entries)),
	}
	copy(out.entries, c.entries)
	for i, e := range out.entries {
		out.index[e.key] = i
	}
	return out
}

// All returns a restartable iterator over (key, value) pairs in
// current order.  Each range over the result reflects the collection
// state at that moment, not a snapshot taken when All was called.
func (c *Collection[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for _, e := range c.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// ToMap exports the entries as a plain Go map.  The result is a copy;
// iteration order is not carried over.
func (c *Collection[V]) ToMap() map[Key]V {
	out := make(map[Key]V, len(c.entries))
	for _, e := range c.entries {
		out[e.key] = e.val
	}
	return out
}

// Pairs exports the entries as a slice of pairs in iteration order.
func (c *Collection[V]) Pairs() []Pair[V] {
	out := make([]Pair[V], len(c.entries))
	for i, e := range c.entries {
		out[i] = Pair[V]{Key: e.key, Value: e.val}
	}
	return out
}
