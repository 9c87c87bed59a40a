// SPDX-License-Identifier: MIT

// Package layout maps 2-D cell coordinates onto linear bit offsets.
//
// The layout is row-major: cell (r, c) of a matrix with cols columns lives at
// linear index r*cols + c. All columns of a row are contiguous, so a row is a
// single span [r*cols, (r+1)*cols) while a column strides by cols. This
// ordering is part of the serialized format and must not change.
//
// Every function here is pure and allocation-free. Bounds are the caller's
// responsibility; InBounds is provided for that purpose.
package layout

import "math"

// Offset returns the linear index of (r, c) for a matrix with cols columns.
// Precondition: 0 <= r < rows and 0 <= c < cols (checked by the caller).
// Complexity: O(1).
func Offset(r, c, cols int) int {
	return r*cols + c
}

// Coords is the inverse of Offset: r = idx / cols, c = idx % cols.
// A matrix with cols == 0 has no valid linear index at all; calling Coords
// with cols == 0 is a programmer error and panics (integer divide by zero).
// Complexity: O(1).
func Coords(idx, cols int) (r, c int) {
	return idx / cols, idx % cols
}

// RowSpan returns the half-open linear range [lo, hi) occupied by row r.
// Complexity: O(1).
func RowSpan(r, cols int) (lo, hi int) {
	lo = r * cols
	return lo, lo + cols
}

// InBounds reports whether (r, c) addresses a cell of a rows×cols matrix.
// Complexity: O(1).
func InBounds(r, c, rows, cols int) bool {
	return r >= 0 && r < rows && c >= 0 && c < cols
}

// Len returns rows*cols and false when either dimension is negative or the
// product does not fit in an int.
// Complexity: O(1).
func Len(rows, cols int) (int, bool) {
	if rows < 0 || cols < 0 {
		return 0, false
	}
	if rows == 0 || cols == 0 {
		return 0, true
	}
	if rows > math.MaxInt/cols {
		return 0, false
	}

	return rows * cols, true
}
