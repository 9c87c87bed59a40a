// SPDX-License-Identifier: MIT

// Package matrix provides structural transforms (Transpose, Resize) and
// element-wise bitwise algebra (And, Or, Xor, Not) over BitMatrix values.
// All functions perform strict fail-fast validation and return clear errors
// on nil operands and dimension mismatches.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/bitmatrix/bitstore"
	"github.com/katalvlaran/bitmatrix/layout"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAnd              = "And"
	opOr               = "Or"
	opXor              = "Xor"
	opNot              = "Not"
	opTranspose        = "Transpose"
	opTransposeInPlace = "TransposeInPlace"
	opResize           = "Resize"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new Cols()×Rows() matrix with cell (j,i) equal to cell
// (i,j) of m. m is left unmodified.
// Stage 1 (Prepare): allocate the flipped shape (already known to be valid).
// Stage 2 (Execute): visit only set bits; map idx -> (i,j) -> j*rows+i.
// Complexity: O(r·c/64 + k) for k set cells.
func (m *BitMatrix) Transpose() *BitMatrix {
	res := newUnchecked(m.c, m.r)
	m.bits.Ones(func(idx int) bool {
		i, j := layout.Coords(idx, m.c) // cols > 0 whenever a bit is set
		_ = res.bits.Set(layout.Offset(j, i, m.r), true)
		return true
	})

	return res
}

// TransposeInPlace transposes a square matrix by swapping (i,j) and (j,i)
// above the diagonal. The result is bit-identical to Transpose.
// Non-square matrices are rejected with ErrNonSquare and left untouched.
// Complexity: O(n²).
func (m *BitMatrix) TransposeInPlace() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, _ := m.bits.Get(layout.Offset(i, j, n))
			b, _ := m.bits.Get(layout.Offset(j, i, n))
			if a != b {
				_ = m.bits.Set(layout.Offset(i, j, n), b)
				_ = m.bits.Set(layout.Offset(j, i, n), a)
			}
		}
	}

	return nil
}

// Resize changes the dimensions to newRows×newCols in place.
// MAIN DESCRIPTION:
//   - Cells (i,j) with i < min(rows,newRows) and j < min(cols,newCols) keep
//     their values; every other cell of the new shape is def.
//
// Implementation:
//   - Stage 1: validate the new shape (ErrBadShape); nothing changes on error.
//   - Stage 2: when cols is unchanged the row-major prefix is already in
//     place, so the store is resized directly.
//   - Stage 3: otherwise every row base offset moves; allocate a fresh store
//     filled with def and copy the preserved rectangle row by row.
//
// Complexity:
//   - Time O(newRows·newCols/64 + min(r,newRows)·min(c,newCols)).
func (m *BitMatrix) Resize(newRows, newCols int, def bool) error {
	n, err := validateShape(newRows, newCols)
	if err != nil {
		return matrixErrorf(opResize, err)
	}

	if newCols == m.c {
		m.bits.Resize(n, def)
		m.r = newRows
		return nil
	}

	fresh := bitstore.New(n, def)
	keepRows, keepCols := min(m.r, newRows), min(m.c, newCols)
	for i := 0; i < keepRows; i++ {
		// Both windows lie inside their stores by construction.
		_ = fresh.CopyRange(layout.Offset(i, 0, newCols), m.bits, layout.Offset(i, 0, m.c), keepCols)
	}
	m.r, m.c, m.bits = newRows, newCols, fresh

	return nil
}

// And returns m AND other as a new matrix; shapes must match.
func (m *BitMatrix) And(other *BitMatrix) (*BitMatrix, error) { return And(m, other) }

// Or returns m OR other as a new matrix; shapes must match.
func (m *BitMatrix) Or(other *BitMatrix) (*BitMatrix, error) { return Or(m, other) }

// Xor returns m XOR other as a new matrix; shapes must match.
func (m *BitMatrix) Xor(other *BitMatrix) (*BitMatrix, error) { return Xor(m, other) }

// Not returns the element-wise complement of m as a new matrix.
// Complexity: O(r·c/64).
func (m *BitMatrix) Not() *BitMatrix {
	res := m.Clone()
	res.bits.Not()

	return res
}

// binaryOp clones a and folds b into the clone with op.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): word-level combination on the packed store.
func binaryOp(tag string, a, b *BitMatrix, op func(dst, src *bitstore.Store) error) (*BitMatrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := a.Clone()
	if err := op(res.bits, b.bits); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return res, nil
}

// And returns the element-wise conjunction of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c/64).
func And(a, b *BitMatrix) (*BitMatrix, error) {
	return binaryOp(opAnd, a, b, (*bitstore.Store).And)
}

// Or returns the element-wise disjunction of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c/64).
func Or(a, b *BitMatrix) (*BitMatrix, error) {
	return binaryOp(opOr, a, b, (*bitstore.Store).Or)
}

// Xor returns the element-wise exclusive-or of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c/64).
func Xor(a, b *BitMatrix) (*BitMatrix, error) {
	return binaryOp(opXor, a, b, (*bitstore.Store).Xor)
}

// Not returns the element-wise complement of m.
// Errors: ErrNilMatrix. Complexity: O(r·c/64).
func Not(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNot, err)
	}

	return m.Not(), nil
}

// Transpose is the package-level form of (*BitMatrix).Transpose.
// Errors: ErrNilMatrix.
func Transpose(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}
