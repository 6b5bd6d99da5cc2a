package rlp

import "errors"

// ErrUnsupportedType is returned when a value's Go type has no RLP encoding
// in this package's reduced type set (unsigned integers, byte slices, and
// slices of those).
var ErrUnsupportedType = errors.New("rlp: unsupported type")
