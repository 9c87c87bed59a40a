// SPDX-License-Identifier: MIT

// Package matrix - Record adapter.
//
// Record is the durable interchange shape {rows, cols, bits} and is kept
// separate from the packed in-memory layout so that encodings can evolve
// independently of the store. Bits are always row-major, matching layout.
//
// Contract:
//   - FromRecord(m.ToRecord()).Equal(m) for every m.
//   - FromRecord(rec).ToRecord() reproduces rec field-for-field for every valid rec.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bitmatrix/bitstore"
)

const (
	ctxFromRecord = "FromRecord"
	ctxFromPacked = "FromPacked"
	ctxValidate   = "Record.Validate"
)

// Validate checks that the dimensions fit in an int and that Bits holds
// exactly Rows*Cols entries. Errors: ErrMalformedData.
// Complexity: O(1).
func (rec Record) Validate() error {
	n, err := recordLen(rec.Rows, rec.Cols)
	if err != nil {
		return matrixErrorf(ctxValidate, err)
	}
	if len(rec.Bits) != n {
		return matrixErrorf(ctxValidate, ErrMalformedData)
	}

	return nil
}

// recordLen converts unsigned record dimensions into a cell count.
func recordLen(rows, cols uint64) (int, error) {
	if rows > math.MaxInt || cols > math.MaxInt {
		return 0, ErrMalformedData
	}
	if _, err := validateShape(int(rows), int(cols)); err != nil {
		return 0, ErrMalformedData
	}

	return int(rows) * int(cols), nil
}

// ToRecord returns the row-major Record of m. The Bits slice is owned by
// the caller. Complexity: O(r·c).
func (m *BitMatrix) ToRecord() Record {
	bits, _ := m.bits.Slice(0, m.bits.Len()) // full range is always valid

	return Record{Rows: uint64(m.r), Cols: uint64(m.c), Bits: bits}
}

// FromRecord rebuilds a matrix from rec.
// Errors: ErrMalformedData when len(Bits) != Rows*Cols or the dimensions
// overflow. Complexity: O(r·c).
func FromRecord(rec Record) (*BitMatrix, error) {
	if err := rec.Validate(); err != nil {
		return nil, matrixErrorf(ctxFromRecord, err)
	}
	m := newUnchecked(int(rec.Rows), int(rec.Cols))
	_ = m.bits.Load(0, rec.Bits) // length validated above

	return m, nil
}

// Packed returns the cells packed LSB-first in row-major order: cell with
// linear index k lives in byte k/8 at bit k%8. Binary codecs build on this.
// Complexity: O(r·c/8).
func (m *BitMatrix) Packed() []byte { return m.bits.Pack() }

// FromPacked rebuilds a rows×cols matrix from Packed output.
// Errors: ErrMalformedData when the dimensions are invalid or the buffer does
// not hold exactly rows*cols bits with zero padding.
// Complexity: O(r·c/8).
func FromPacked(rows, cols uint64, packed []byte) (*BitMatrix, error) {
	n, err := recordLen(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFromPacked, err)
	}
	bits, err := bitstore.Unpack(packed, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ctxFromPacked, ErrMalformedData, err)
	}

	return &BitMatrix{r: int(rows), c: int(cols), bits: bits}, nil
}
