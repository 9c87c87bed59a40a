// SPDX-License-Identifier: MIT
// Package bitstore: sentinel error set.
// Every exported operation returns one of these (possibly wrapped with an
// operation tag); tests match them via errors.Is.

package bitstore

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a linear index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("bitstore: index out of range")

	// ErrBadRange indicates an inverted range or a range that exceeds the store.
	ErrBadRange = errors.New("bitstore: invalid range")

	// ErrLengthMismatch indicates that two stores (or a store and a value
	// sequence) have different lengths where equal lengths are required.
	ErrLengthMismatch = errors.New("bitstore: length mismatch")

	// ErrBadPacking indicates a packed byte buffer that cannot hold exactly
	// the requested number of bits (wrong size or non-zero padding).
	ErrBadPacking = errors.New("bitstore: malformed packed bits")

	// ErrNegativeLength indicates a negative store length.
	ErrNegativeLength = errors.New("bitstore: negative length")
)

// Operation tags for uniform error wrapping.
const (
	opGet    = "Get"
	opSet    = "Set"
	opFill   = "Fill"
	opLoad   = "Load"
	opCopy   = "CopyRange"
	opSlice  = "Slice"
	opAnd    = "And"
	opOr     = "Or"
	opXor    = "Xor"
	opUnpack = "Unpack"
)

// storeErrorf wraps a sentinel with the operation tag.
func storeErrorf(tag string, err error) error {
	return fmt.Errorf("Store.%s: %w", tag, err)
}
