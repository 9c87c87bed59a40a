// Package bitmatrix is a dense two-dimensional matrix of bits laid out
// row-major on top of a one-dimensional packed bit store.
//
// What is in the box?
//
//	• Element access: Get/Set with strict bounds checks, whole-row and
//	  whole-column reads and writes
//	• Logic: And, Or, Xor, Not over matrices of equal shape, word at a time
//	• Shape: Transpose (copy or in place), Resize that keeps the overlap
//	• Persistence: a Record form {rows, cols, bits} plus JSON, YAML, XDR,
//	  roaring and compressed binary codecs
//
// Under the hood, everything is organized under four subpackages:
//
//	bitstore/ — fixed-length packed bit sequence (github.com/bits-and-blooms/bitset)
//	layout/   — row-major index arithmetic: (row, col) ↔ linear offset
//	matrix/   — BitMatrix, its operations, validators and the Record adapter
//	codec/    — Codec interface and built-in encodings with slog diagnostics
//
// Quick start:
//
//	m, _ := matrix.New(2, 3, false)
//	_ = m.Set(0, 1, true)
//	t := m.Transpose()        // 3×2
//	data, _ := codec.MustByName(codec.NameXDRZstd).Marshal(t)
//
// All operations validate their arguments before touching any bit: a call
// that returns an error leaves the receiver unchanged. A BitMatrix is not
// safe for concurrent mutation; codecs are safe for concurrent use.
//
// See examples/ for a runnable access-matrix walkthrough.
package bitmatrix
