// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.

package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bitmatrix/matrix"
)

var (
	// ErrMalformedData aliases matrix.ErrMalformedData so callers can match
	// either name with errors.Is.
	ErrMalformedData = matrix.ErrMalformedData

	// ErrTooLarge indicates a matrix whose dimensions or cell offsets do not
	// fit the fixed-width fields of a binary format.
	ErrTooLarge = errors.New("codec: matrix too large for format")

	// ErrUnknownCodec indicates an unregistered codec name.
	ErrUnknownCodec = errors.New("codec: unknown codec")
)

// Operation tags for uniform error wrapping.
const (
	opMarshal   = "Marshal"
	opUnmarshal = "Unmarshal"
)

// codecErrorf wraps err with the codec name and operation tag.
func codecErrorf(name, op string, err error) error {
	return fmt.Errorf("codec %s: %s: %w", name, op, err)
}

// malformed wraps a foreign decoding error so it matches ErrMalformedData
// while the cause stays reachable through errors.As.
func malformed(name string, cause error) error {
	return fmt.Errorf("codec %s: %s: %w: %w", name, opUnmarshal, ErrMalformedData, cause)
}
