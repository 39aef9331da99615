package vect

import "errors"

// ErrOutOfRange is returned by the checked accessors (At, SetAt) when
// the index is not within [0, Len()).
var ErrOutOfRange = errors.New("index out of range")
