// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil matrix -> shape -> index -> length/dimension mismatch -> data format.

var (
	// ErrBadShape is returned when requested dimensions are negative or
	// rows*cols does not fit in an int. Zero rows or zero columns are legal.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfBounds indicates that a row or column index is outside the
	// current dimensions. Detected before any mutation; indices are never clamped.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrLengthMismatch indicates that a supplied row/column sequence does not
	// have exactly Cols()/Rows() entries.
	ErrLengthMismatch = errors.New("matrix: length mismatch")

	// ErrDimensionMismatch indicates two matrices with different (rows, cols)
	// were combined element-wise.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedData indicates a Record whose bits disagree with rows*cols,
	// or an encoded payload that does not decode into a valid Record.
	ErrMalformedData = errors.New("matrix: malformed data")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *BitMatrix argument was passed.
	// Methods called on a nil receiver are programmer errors and panic.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrOutOfRange names the same condition as ErrOutOfBounds.
var ErrOutOfRange = ErrOutOfBounds
