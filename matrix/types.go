// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file intentionally contains ONLY the
// BitMatrix value and its serialization Record. Errors live in errors.go,
// validation in validators.go.
package matrix

import "github.com/katalvlaran/bitmatrix/bitstore"

// BitMatrix is a dense rows×cols matrix of bits in row-major order.
//   - r,c hold dimensions (>= 0; zero-area matrices are legal and hold no bits).
//   - bits holds exactly r*c bits; cell (i,j) lives at i*c + j.
//
// The matrix exclusively owns bits; Clone and every non-mutating transform
// return matrices with their own storage.
type BitMatrix struct {
	r, c int             // row and column counts
	bits *bitstore.Store // len == r*c, row-major
}

// Record is the serialization boundary for a BitMatrix.
// Bits lists every cell in row-major order and must hold exactly Rows*Cols
// entries. Field names and order are part of the interchange contract.
type Record struct {
	Rows uint64 `json:"rows" yaml:"rows"`
	Cols uint64 `json:"cols" yaml:"cols"`
	Bits []bool `json:"bits" yaml:"bits"`
}
