// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the row-major order or the validate-then-mutate policy.
//   - Validation is performed in the canonical methods; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a rows×cols matrix with every cell cleared.
// Thin alias of New(rows, cols, false).
func NewZeros(rows, cols int) (*BitMatrix, error) {
	return New(rows, cols, false)
}

// NewOnes returns a rows×cols matrix with every cell set.
// Thin alias of New(rows, cols, true).
func NewOnes(rows, cols int) (*BitMatrix, error) {
	return New(rows, cols, true)
}

// NewIdentity returns the n×n matrix with only the diagonal set.
// Complexity: O(n^2/64) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*BitMatrix, error) {
	id, err := New(n, n, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		_ = id.Set(i, i, true) // in bounds after shape validation
	}

	return id, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
// An empty input yields a 0×0 matrix; a ragged input fails with
// ErrLengthMismatch before anything is allocated.
// Complexity: O(r*c).
func FromRows(rows [][]bool) (*BitMatrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i := range rows {
		if err := ValidateVecLen(rows[i], cols); err != nil {
			return nil, bitMatrixErrorf("FromRows", i, 0, err)
		}
	}
	m, err := New(len(rows), cols, false)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		_ = m.SetRow(i, row) // lengths validated above
	}

	return m, nil
}

// CloneMatrix returns an independent copy of m, or ErrNilMatrix.
func CloneMatrix(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a cleared matrix with the same shape as m.
func ZerosLike(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newUnchecked(m.r, m.c), nil
}

// ---------- Algebra aliases ----------

// T is a short alias for Transpose.
func T(m *BitMatrix) (*BitMatrix, error) { return Transpose(m) }

// Intersect is an alias for And.
func Intersect(a, b *BitMatrix) (*BitMatrix, error) { return And(a, b) }

// Union is an alias for Or.
func Union(a, b *BitMatrix) (*BitMatrix, error) { return Or(a, b) }

// SymmetricDiff is an alias for Xor.
func SymmetricDiff(a, b *BitMatrix) (*BitMatrix, error) { return Xor(a, b) }
