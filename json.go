package orderedkv

import (
	"encoding/json"

	"github.com/go-faster/jx"
	"github.com/pkg/errors"
)

// MarshalJSON encodes the collection in iteration order.  A
// list-shaped collection encodes as a JSON array; any other shape
// encodes as a JSON object with integer keys rendered in decimal.
// Values are serialized with encoding/json, so anything the stdlib
// can marshal works as V.
//
// TODO: stream into an io.Writer instead of buffering the whole
// document once jx exposes an Encoder reset against a writer here.
func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	if c.IsList() {
		e.ArrStart()
		for _, ent := range c.entries {
			raw, err := json.Marshal(ent.val)
			if err != nil {
				return nil, errors.Wrapf(err, "encode value at key %q", ent.key.String())
			}
			e.Raw(raw)
		}
		e.ArrEnd()
		return e.Bytes(), nil
	}
	e.ObjStart()
	for _, ent := range c.entries {
		raw, err := json.Marshal(ent.val)
		if err != nil {
			return nil, errors.Wrapf(err, "encode value at key %q", ent.key.String())
		}
		e.FieldStart(ent.key.String())
		e.Raw(raw)
	}
	e.ObjEnd()
	return e.Bytes(), nil
}

// UnmarshalJSON replaces the collection's contents from JSON.  The
// document order of object fields becomes the insertion order — the
// reason this goes through jx rather than encoding/json, whose map
// decoding discards order.  An array root produces a list-shaped
// collection; an object root produces string keys, with canonical
// digit strings folded to integer keys.  A duplicate object key keeps
// its first position and last value, matching Set.  Any malformed
// input is ERR_DECODE.
func (c *Collection[V]) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	out := New[V]()

	switch d.Next() {
	case jx.Array:
		i := 0
		err := d.Arr(func(d *jx.Decoder) error {
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			var v V
			if err := json.Unmarshal(raw, &v); err != nil {
				return errors.Wrapf(err, "decode element %d", i)
			}
			out.Set(IntKey(i), v)
			i++
			return nil
		})
		if err != nil {
			return newErr(ErrDecode, err.Error())
		}

	case jx.Object:
		err := d.Obj(func(d *jx.Decoder, key string) error {
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			var v V
			if err := json.Unmarshal(raw, &v); err != nil {
				return errors.Wrapf(err, "decode value for key %q", key)
			}
			out.Set(canonicalKey(StringKey(key)), v)
			return nil
		})
		if err != nil {
			return newErr(ErrDecode, err.Error())
		}

	default:
		return newErr(ErrDecode, "JSON root must be an array or object")
	}

	if d.Next() != jx.Invalid {
		return newErr(ErrDecode, "trailing content after JSON root")
	}

	c.entries = out.entries
	c.index = out.index
	return nil
}
