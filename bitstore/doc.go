// Package bitstore provides the linear bit sequence that backs a bit matrix.
//
// A Store is a fixed-length sequence of bits addressed by a 0-based linear
// index. Storage is packed into 64-bit words by
// github.com/bits-and-blooms/bitset; the word layout never leaks through the
// API, which only exposes bounds-checked accessors.
//
// Complexity:
//   - Get/Set: O(1).
//   - Fill, And, Or, Xor, Not, Count, Equal: O(n/64).
//   - Resize: O(n/64) plus a fresh allocation.
//
// A Store performs no internal locking. Callers that share one instance
// across goroutines must guard it themselves.
package bitstore
