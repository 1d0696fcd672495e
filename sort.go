package orderedkv

import (
	"cmp"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Sort reorders the entries in place by value, keeping each key
// attached to its value.  A nil comparator means natural ordering
// (see compareNatural); otherwise cmp(a, b) returns the usual
// negative/zero/positive three-way result.  The sort is stable.
func (c *Collection[V]) Sort(compare func(a, b V) int) {
	if compare == nil {
		compare = func(a, b V) int { return compareNatural(any(a), any(b)) }
	}
	sort.SliceStable(c.entries, func(i, j int) bool {
		return compare(c.entries[i].val, c.entries[j].val) < 0
	})
	c.ensure()
	for i, e := range c.entries {
		c.index[e.key] = i
	}
}

// Sorted returns a sorted copy, leaving the receiver untouched.  The
// comparator contract matches Sort.
func (c *Collection[V]) Sorted(compare func(a, b V) int) *Collection[V] {
	out := c.Clone()
	out.Sort(compare)
	return out
}

// Kind classes for natural ordering.  Values of different classes
// order by class, so the ordering is total even over mixed values.
const (
	classNil = iota
	classBool
	classNumber
	classString
	classOther
)

// compareNatural is the default value ordering: nil first, then
// booleans (false < true), then numbers compared numerically across
// int/uint/float kinds, then strings lexicographically.  Anything
// else orders by its formatted text, which keeps the result
// deterministic without claiming a meaningful order.
func compareNatural(a, b any) int {
	ca, cb := kindClass(a), kindClass(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case classNil:
		return 0
	case classBool:
		ba := reflect.ValueOf(a).Bool()
		bb := reflect.ValueOf(b).Bool()
		switch {
		case ba == bb:
			return 0
		case bb:
			return -1
		default:
			return 1
		}
	case classNumber:
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if isIntKind(ra.Kind()) && isIntKind(rb.Kind()) {
			return cmp.Compare(ra.Int(), rb.Int())
		}
		if isUintKind(ra.Kind()) && isUintKind(rb.Kind()) {
			return cmp.Compare(ra.Uint(), rb.Uint())
		}
		return cmp.Compare(numericValue(ra), numericValue(rb))
	case classString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func kindClass(v any) int {
	if v == nil {
		return classNil
	}
	switch k := reflect.ValueOf(v).Kind(); {
	case k == reflect.Bool:
		return classBool
	case isIntKind(k), isUintKind(k), k == reflect.Float32, k == reflect.Float64:
		return classNumber
	case k == reflect.String:
		return classString
	default:
		return classOther
	}
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func numericValue(v reflect.Value) float64 {
	switch k := v.Kind(); {
	case isIntKind(k):
		return float64(v.Int())
	case isUintKind(k):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
