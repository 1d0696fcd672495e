package orderedkv

import "strconv"

// Key is a collection key.  Concrete types:
//
//   - IntKey    (signed 64-bit integer keys)
//   - StringKey (string keys)
//
// Both concrete types are comparable, so Key values work as Go map
// keys and an integer key never collides with a string key of the
// same spelling — except through canonicalization, below.
type Key interface {
	collectionKey() // sealed marker — only types in this package implement Key
	String() string
}

// IntKey is an integer collection key.
type IntKey int64

// StringKey is a string collection key.
type StringKey string

func (IntKey) collectionKey()    {}
func (StringKey) collectionKey() {}

func (k IntKey) String() string    { return strconv.FormatInt(int64(k), 10) }
func (k StringKey) String() string { return string(k) }

// canonicalKey folds a StringKey whose text is a canonical signed
// decimal integer into the equivalent IntKey, so "12" and 12 address
// the same entry.  Non-canonical spellings ("012", "1.0", "-0", out
// of int64 range) stay string keys.  Every entry point that accepts
// a Key routes through here.
func canonicalKey(k Key) Key {
	s, ok := k.(StringKey)
	if !ok {
		return k
	}
	if !isCanonicalInt(string(s)) {
		return k
	}
	n, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return k
	}
	return IntKey(n)
}

func isCanonicalInt(s string) bool {
	if s == "" {
		return false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
		if digits == "" || digits == "0" {
			return false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
