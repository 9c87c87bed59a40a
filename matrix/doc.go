// Package matrix provides BitMatrix, a dense two-dimensional matrix of bits.
//
// The matrix package provides:
//
//   - BitMatrix: rows×cols cells stored one bit per cell in a packed
//     bitstore.Store, laid out row-major (cell (r,c) at r*cols+c, see layout).
//   - Safe cell, row and column access: Get/Set/Row/Column/SetRow/SetColumn
//     return sentinel errors instead of panicking and never partially write.
//   - Structural transforms: Transpose, TransposeInPlace (square only), Resize.
//   - Element-wise algebra: And, Or, Xor, Not, Equal.
//   - Record: the decoupled serialization boundary {rows, cols, bits}.
//
// Rows are contiguous, so Row is a cheap slice of the store while Column
// strides across every row (cost proportional to Rows()). The asymmetry is a
// direct consequence of the row-major layout, which is also the order used by
// Record and every codec.
//
// A BitMatrix has no internal locking. Share an instance across goroutines
// only behind caller-supplied synchronization (e.g. sync.RWMutex).
//
// See the examples in this package and the codec package for usage patterns.
package matrix
