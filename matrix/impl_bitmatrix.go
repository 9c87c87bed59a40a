// SPDX-License-Identifier: MIT

// Package matrix - BitMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep one bit per cell in a packed bitstore.Store with the index formula i*cols + j.
//   - Guarantee safety at the public surface: Get/Set/Row/Column return errors instead of panicking.
//   - Validate-then-mutate everywhere: a failed call never leaves a partial write.
//   - Keep algorithmic determinism (fixed row-major loop orders).
//
// Complexity quicksheet:
//   - New: O(r*c/64); Get/Set: O(1); Row: O(c); Column: O(r); Clone/Fill/Count/Equal: O(r*c/64).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bitmatrix/bitstore"
	"github.com/katalvlaran/bitmatrix/layout"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxGet       = "Get"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxSetRow    = "SetRow"
	ctxSetColumn = "SetColumn"
)

// ---------- Formatting literals ----------
const (
	_fmtZero    = '0'
	_fmtOne     = '1'
	_fmtRowTerm = '\n'
)

// bitMatrixErrorf wraps an error with a uniform BitMatrix context and callsite indices.
func bitMatrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("BitMatrix.%s(%d,%d): %w", method, row, col, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*BitMatrix)(nil)

// New creates a rows×cols matrix with every cell set to def.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0 and that rows*cols fits in an int.
//   - Stage 2: allocate a packed store of rows*cols bits filled with def.
//
// Behavior highlights:
//   - rows==0 or cols==0 yields a valid empty matrix with no addressable cells.
//
// Errors:
//   - ErrBadShape (negative or overflowing dimensions).
//
// Complexity:
//   - Time O(r*c/64), Space O(r*c/8) bytes.
func New(rows, cols int, def bool) (*BitMatrix, error) {
	n, err := validateShape(rows, cols)
	if err != nil {
		return nil, bitMatrixErrorf(ctxNew, rows, cols, err)
	}

	return &BitMatrix{r: rows, c: cols, bits: bitstore.New(n, def)}, nil
}

// newUnchecked allocates a zero matrix for internal callers that already
// hold a validated shape (e.g. the flipped shape of an existing matrix).
func newUnchecked(rows, cols int) *BitMatrix {
	return &BitMatrix{r: rows, c: cols, bits: bitstore.New(rows*cols, false)}
}

// Rows returns the row count. Complexity: O(1).
func (m *BitMatrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *BitMatrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *BitMatrix) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of cells (rows*cols).
func (m *BitMatrix) Len() int { return m.bits.Len() }

// IsEmpty reports whether the matrix has no cells.
func (m *BitMatrix) IsEmpty() bool { return m.bits.Len() == 0 }

// indexOf computes the row-major offset or returns ErrOutOfBounds.
// Bounds semantics are shared by every accessor through this helper.
func (m *BitMatrix) indexOf(row, col int) (int, error) {
	if !layout.InBounds(row, col, m.r, m.c) {
		return 0, ErrOutOfBounds
	}

	return layout.Offset(row, col, m.c), nil
}

// Get returns the bit at (row, col) or ErrOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe cell read.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from the packed store.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *BitMatrix) Get(row, col int) (bool, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return false, bitMatrixErrorf(ctxGet, row, col, err)
	}
	v, _ := m.bits.Get(off) // offset already validated

	return v, nil
}

// Set stores v at (row, col) or returns ErrOutOfBounds.
// Other cells are never touched. Complexity: O(1).
func (m *BitMatrix) Set(row, col int, v bool) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return bitMatrixErrorf(ctxSet, row, col, err)
	}
	_ = m.bits.Set(off, v) // offset already validated

	return nil
}

// Row returns an owned copy of row r (length Cols()).
// Rows are contiguous in the store, so this is a single span copy.
// Complexity: O(c).
func (m *BitMatrix) Row(r int) ([]bool, error) {
	if r < 0 || r >= m.r {
		return nil, bitMatrixErrorf(ctxRow, r, 0, ErrOutOfBounds)
	}
	lo, hi := layout.RowSpan(r, m.c)
	out, _ := m.bits.Slice(lo, hi) // span lies inside the store

	return out, nil
}

// Column returns an owned copy of column c (length Rows()).
// Columns stride across rows in row-major storage, so the cost is O(r).
func (m *BitMatrix) Column(c int) ([]bool, error) {
	if c < 0 || c >= m.c {
		return nil, bitMatrixErrorf(ctxColumn, 0, c, ErrOutOfBounds)
	}
	out := make([]bool, m.r)
	for i := range out {
		out[i], _ = m.bits.Get(layout.Offset(i, c, m.c))
	}

	return out, nil
}

// SetRow overwrites row r with vals.
// MAIN DESCRIPTION:
//   - All-or-nothing bulk write of one row.
//
// Implementation:
//   - Stage 1: validate the row index (ErrOutOfBounds).
//   - Stage 2: validate len(vals) == Cols() (ErrLengthMismatch).
//   - Stage 3: load the contiguous span.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *BitMatrix) SetRow(r int, vals []bool) error {
	if r < 0 || r >= m.r {
		return bitMatrixErrorf(ctxSetRow, r, 0, ErrOutOfBounds)
	}
	if err := ValidateVecLen(vals, m.c); err != nil {
		return bitMatrixErrorf(ctxSetRow, r, 0, err)
	}
	lo, _ := layout.RowSpan(r, m.c)
	_ = m.bits.Load(lo, vals) // span validated above

	return nil
}

// SetColumn overwrites column c with vals (len must equal Rows()).
// Validation happens before the first write. Complexity: O(r).
func (m *BitMatrix) SetColumn(c int, vals []bool) error {
	if c < 0 || c >= m.c {
		return bitMatrixErrorf(ctxSetColumn, 0, c, ErrOutOfBounds)
	}
	if err := ValidateVecLen(vals, m.r); err != nil {
		return bitMatrixErrorf(ctxSetColumn, 0, c, err)
	}
	for i, v := range vals {
		_ = m.bits.Set(layout.Offset(i, c, m.c), v)
	}

	return nil
}

// Fill sets every cell to v. Complexity: O(r*c/64).
func (m *BitMatrix) Fill(v bool) {
	_ = m.bits.Fill(0, m.bits.Len(), v) // full range is always valid
}

// Count returns the number of set cells. Complexity: O(r*c/64).
func (m *BitMatrix) Count() int { return m.bits.Count() }

// Clone returns a deep copy with independent storage.
// Complexity: O(r*c/64).
func (m *BitMatrix) Clone() *BitMatrix {
	return &BitMatrix{r: m.r, c: m.c, bits: m.bits.Clone()}
}

// Equal reports whether other has the same shape and identical cells.
// A nil argument is never equal. Complexity: O(r*c/64).
func (m *BitMatrix) Equal(other *BitMatrix) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}

	return m.bits.Equal(other.bits)
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c).
func (m *BitMatrix) Do(f func(i, j int, v bool) bool) {
	var i, j, base int
	var v bool

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			v, _ = m.bits.Get(base + j)
			if !f(i, j, v) {
				return
			}
		}
	}
}

// DoRows calls f with each row index and an owned copy of that row, in order.
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *BitMatrix) DoRows(f func(i int, row []bool) bool) {
	for i := 0; i < m.r; i++ {
		lo, hi := layout.RowSpan(i, m.c)
		row, _ := m.bits.Slice(lo, hi)
		if !f(i, row) {
			return
		}
	}
}

// DoOnes calls f with the coordinates of every set cell in row-major order
// and stops early when f returns false. Unset cells cost nothing beyond the
// word scan, so this is the cheap way to walk sparse contents.
// Complexity: O(r*c/64 + k) for k set cells.
func (m *BitMatrix) DoOnes(f func(i, j int) bool) {
	m.bits.Ones(func(idx int) bool {
		i, j := layout.Coords(idx, m.c) // a set bit implies cols > 0
		return f(i, j)
	})
}

// String renders each row as a line of '0'/'1' characters terminated by a
// newline. An empty matrix renders as rows empty lines (or "" for 0 rows).
// Intended for logs and debugging, not hot paths.
func (m *BitMatrix) String() string {
	var b strings.Builder
	b.Grow(m.r * (m.c + 1))
	m.DoRows(func(_ int, row []bool) bool {
		for _, v := range row {
			if v {
				b.WriteByte(_fmtOne)
			} else {
				b.WriteByte(_fmtZero)
			}
		}
		b.WriteByte(_fmtRowTerm)
		return true
	})

	return b.String()
}
