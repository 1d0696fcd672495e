package orderedkv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderedkv/orderedkv"
)

func TestSetGet(t *testing.T) {
	c := orderedkv.New[string]()
	c.Set(orderedkv.StringKey("a"), "x").
		Set(orderedkv.IntKey(1), "y").
		Set(orderedkv.StringKey("b"), "z")
	require.Equal(t, 3, c.Count())

	v, err := c.Get(orderedkv.StringKey("a"))
	require.NoError(t, err)
	require.Equal(t, "x", v)

	// Overwrite keeps the original position and takes the last value.
	c.Set(orderedkv.StringKey("a"), "x2")
	require.Equal(t, 3, c.Count())
	v, err = c.Get(orderedkv.StringKey("a"))
	require.NoError(t, err)
	require.Equal(t, "x2", v)
	fk, ok := c.FirstKey()
	require.True(t, ok)
	require.Equal(t, orderedkv.StringKey("a"), fk)
}

func TestGetMissingKey(t *testing.T) {
	c := orderedkv.New[int]()
	_, err := c.Get(orderedkv.StringKey("nope"))
	require.Error(t, err)
	var ce *orderedkv.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, orderedkv.ErrKeyNotFound, ce.Code)
}

func TestKeyCanonicalization(t *testing.T) {
	c := orderedkv.New[string]()
	c.Set(orderedkv.StringKey("12"), "v")

	// "12" and 12 address the same entry.
	v, err := c.Get(orderedkv.IntKey(12))
	require.NoError(t, err)
	require.Equal(t, "v", v)
	require.Equal(t, 1, c.Count())
	c.Set(orderedkv.IntKey(12), "w")
	require.Equal(t, 1, c.Count())

	// Non-canonical spellings stay string keys.
	require.False(t, c.ContainsKey(orderedkv.StringKey("012")))
	require.False(t, c.ContainsKey(orderedkv.StringKey("12.0")))
	c.Set(orderedkv.StringKey("-0"), "neg")
	require.False(t, c.ContainsKey(orderedkv.IntKey(0)))
}

func TestInsertionOrder(t *testing.T) {
	c := orderedkv.FromPairs(
		orderedkv.Pair[int]{Key: orderedkv.StringKey("foo"), Value: 1},
		orderedkv.Pair[int]{Key: orderedkv.StringKey("bar"), Value: 2},
	)
	fk, ok := c.FirstKey()
	require.True(t, ok)
	require.Equal(t, orderedkv.StringKey("foo"), fk)
	lk, ok := c.LastKey()
	require.True(t, ok)
	require.Equal(t, orderedkv.StringKey("bar"), lk)

	c.Clear()
	require.True(t, c.IsEmpty())
	_, ok = c.FirstKey()
	require.False(t, ok)
	_, ok = c.LastKey()
	require.False(t, ok)
}

func TestAddAppendsSequentialKeys(t *testing.T) {
	c := orderedkv.FromSlice([]string{"a", "b"})
	require.NoError(t, c.Add("c"))

	v, err := c.Get(orderedkv.IntKey(2))
	require.NoError(t, err)
	require.Equal(t, "c", v)
	last, ok := c.Last()
	require.True(t, ok)
	require.Equal(t, "c", last)
	require.True(t, c.IsList())
}

func TestAddRejectsKeyedCollection(t *testing.T) {
	c := orderedkv.New[string]()
	c.Set(orderedkv.StringKey("foo"), "a")

	err := c.Add("b")
	require.Error(t, err)
	var ce *orderedkv.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, orderedkv.ErrNotList, ce.Code)
	require.Contains(t, ce.Msg, "Set")
	require.Equal(t, 1, c.Count())
}

func TestRemove(t *testing.T) {
	c := orderedkv.FromSlice([]string{"a", "b", "c"})

	v, ok := c.Remove(orderedkv.IntKey(1))
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, 2, c.Count())
	require.False(t, c.ContainsKey(orderedkv.IntKey(1)))

	// Remaining keys are not renumbered.
	v, err := c.Get(orderedkv.IntKey(2))
	require.NoError(t, err)
	require.Equal(t, "c", v)

	// Idempotent: removing an absent key is a no-op.
	_, ok = c.Remove(orderedkv.IntKey(1))
	require.False(t, ok)
	require.Equal(t, 2, c.Count())
}

func TestRemoveValueStrict(t *testing.T) {
	type item struct{ Foo string }
	a := &item{Foo: "x"}
	b := &item{Foo: "y"}
	dup := &item{Foo: "x"} // same contents, different identity
	c := orderedkv.FromSlice([]*item{a, b})

	require.False(t, c.RemoveValue(dup))
	require.Equal(t, 2, c.Count())

	require.True(t, c.RemoveValue(a))
	require.False(t, c.Contains(a))
	require.True(t, c.Contains(b))
}

func TestIsList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.True(t, orderedkv.New[int]().IsList())
	})
	t.Run("sequential", func(t *testing.T) {
		require.True(t, orderedkv.FromSlice([]int{1, 2, 3}).IsList())
	})
	t.Run("string_key", func(t *testing.T) {
		c := orderedkv.New[int]()
		c.Set(orderedkv.StringKey("foo"), 1)
		require.False(t, c.IsList())
	})
	t.Run("gap", func(t *testing.T) {
		c := orderedkv.New[int]()
		c.Set(orderedkv.IntKey(0), 1)
		c.Set(orderedkv.IntKey(2), 2)
		require.False(t, c.IsList())
	})
}

func TestKeyOf(t *testing.T) {
	c := orderedkv.FromPairs(
		orderedkv.Pair[int]{Key: orderedkv.StringKey("a"), Value: 10},
		orderedkv.Pair[int]{Key: orderedkv.StringKey("b"), Value: 20},
		orderedkv.Pair[int]{Key: orderedkv.StringKey("c"), Value: 10},
	)
	k, ok := c.KeyOf(10)
	require.True(t, ok)
	require.Equal(t, orderedkv.StringKey("a"), k) // first match wins

	_, ok = c.KeyOf(30)
	require.False(t, ok)
}

func TestIterationRestartable(t *testing.T) {
	c := orderedkv.FromPairs(
		orderedkv.Pair[int]{Key: orderedkv.StringKey("foo"), Value: 1},
		orderedkv.Pair[int]{Key: orderedkv.IntKey(7), Value: 2},
	)
	collect := func() []orderedkv.Pair[int] {
		var out []orderedkv.Pair[int]
		for k, v := range c.All() {
			out = append(out, orderedkv.Pair[int]{Key: k, Value: v})
		}
		return out
	}
	first := collect()
	second := collect()
	require.Equal(t, first, second)
	require.Len(t, first, 2)
	require.Equal(t, orderedkv.StringKey("foo"), first[0].Key)

	// A fresh range reflects mutations made in between.
	c.Set(orderedkv.StringKey("bar"), 3)
	require.Len(t, collect(), 3)
}

func TestCloneIndependent(t *testing.T) {
	src := orderedkv.FromSlice([]int{1, 2})
	dst := src.Clone()
	dst.Set(orderedkv.IntKey(0), 99)
	require.NoError(t, dst.Add(3))

	v, err := src.Get(orderedkv.IntKey(0))
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, src.Count())
	require.Equal(t, 3, dst.Count())
}

func TestZeroValueUsable(t *testing.T) {
	var c orderedkv.Collection[int]
	c.Set(orderedkv.IntKey(0), 1)
	require.Equal(t, 1, c.Count())
	require.True(t, c.IsList())
}

func TestExport(t *testing.T) {
	c := orderedkv.FromPairs(
		orderedkv.Pair[int]{Key: orderedkv.StringKey("a"), Value: 1},
		orderedkv.Pair[int]{Key: orderedkv.IntKey(3), Value: 2},
	)
	m := c.ToMap()
	require.Equal(t, map[orderedkv.Key]int{
		orderedkv.StringKey("a"): 1,
		orderedkv.IntKey(3):      2,
	}, m)

	// Exports are copies: mutating them leaves the collection alone.
	m[orderedkv.StringKey("a")] = 99
	v, err := c.Get(orderedkv.StringKey("a"))
	require.NoError(t, err)
	require.Equal(t, 1, v)

	pairs := c.Pairs()
	require.Len(t, pairs, 2)
	require.Equal(t, orderedkv.StringKey("a"), pairs[0].Key)
	require.Equal(t, orderedkv.IntKey(3), pairs[1].Key)
}

func TestCollect(t *testing.T) {
	src := orderedkv.FromSlice([]string{"a", "b"})
	dst := orderedkv.Collect(src.All())
	require.Equal(t, src.Pairs(), dst.Pairs())
}
