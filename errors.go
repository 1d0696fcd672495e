package orderedkv

import "fmt"

// Error codes.  Callers match on the Code field.
const (
	ErrKeyNotFound = "ERR_KEY_NOT_FOUND"
	ErrNotList     = "ERR_NOT_LIST"
	ErrDecode      = "ERR_DECODE"
)

// Error is the canonical error type for collection operations.
// Failures inside caller-supplied predicates, comparators, and
// callbacks are never caught or wrapped into this type — they
// propagate to the caller unmodified.
type Error struct {
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func newErr(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}
