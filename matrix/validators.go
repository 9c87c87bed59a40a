// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep façade methods minimal by delegating nil/shape/length checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil -> Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/bitmatrix/layout"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *BitMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *BitMatrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *BitMatrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures a row/column value sequence has exactly n entries.
// Complexity: O(1).
func ValidateVecLen(x []bool, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrLengthMismatch)
	}

	return nil
}

// validateShape checks that rows×cols is a legal (possibly empty) shape and
// returns the number of cells.
func validateShape(rows, cols int) (int, error) {
	n, ok := layout.Len(rows, cols)
	if !ok {
		return 0, ErrBadShape
	}

	return n, nil
}
