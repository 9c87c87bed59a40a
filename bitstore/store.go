// SPDX-License-Identifier: MIT

// Package bitstore - word-packed bit sequence & safe accessors.
//
// Purpose:
//   - Keep one bit per cell in 64-bit words (bits-and-blooms/bitset).
//   - Guarantee safety at the public surface: Get/Set return errors instead of panicking.
//   - Validate before mutating so a failed call never leaves partial state.
//
// Invariant:
//   - bits.Len() == n, and every bit at index >= n inside the last word is zero.
//     Count/Equal/Pack rely on clean trailing bits.

package bitstore

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// wordBits is the width of one backing word.
const wordBits = 64

// Store is a fixed-length, word-packed sequence of bits.
// The zero value is an empty store ready to use.
type Store struct {
	n    int            // logical length in bits
	bits *bitset.BitSet // packed words, Len() == n
}

// New returns a store of n bits, each initialised to fill.
// A negative n is a programmer error and panics.
// Complexity: O(n/64).
func New(n int, fill bool) *Store {
	if n < 0 {
		panic(ErrNegativeLength)
	}
	s := &Store{n: n, bits: bitset.New(uint(n))}
	if fill {
		s.bits.FlipRange(0, uint(n))
	}

	return s
}

// lazy makes the zero value usable.
func (s *Store) lazy() {
	if s.bits == nil {
		s.bits = bitset.New(uint(s.n))
	}
}

// Len returns the number of bits in the store.
func (s *Store) Len() int { return s.n }

// checkIndex validates 0 <= i < n.
func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= s.n {
		return ErrIndexOutOfRange
	}

	return nil
}

// checkRange validates 0 <= lo <= hi <= n.
func (s *Store) checkRange(lo, hi int) error {
	if lo < 0 || hi < lo || hi > s.n {
		return ErrBadRange
	}

	return nil
}

// Get returns the bit at i or ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Store) Get(i int) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, storeErrorf(opGet, err)
	}
	s.lazy()

	return s.bits.Test(uint(i)), nil
}

// Set writes v at i or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Store) Set(i int, v bool) error {
	if err := s.checkIndex(i); err != nil {
		return storeErrorf(opSet, err)
	}
	s.lazy()
	s.bits.SetTo(uint(i), v)

	return nil
}

// Fill sets every bit in [lo, hi) to v. An empty range is a no-op.
// The range is applied with word-level mask operations.
// Complexity: O(n/64).
func (s *Store) Fill(lo, hi int, v bool) error {
	if err := s.checkRange(lo, hi); err != nil {
		return storeErrorf(opFill, err)
	}
	if lo == hi {
		return nil
	}
	s.lazy()

	// Whole-store fast path.
	if lo == 0 && hi == s.n {
		s.bits.ClearAll()
		if v {
			s.bits.FlipRange(0, uint(s.n))
		}
		return nil
	}

	mask := bitset.New(uint(s.n)).FlipRange(uint(lo), uint(hi))
	if v {
		s.bits.InPlaceUnion(mask)
	} else {
		s.bits.InPlaceDifference(mask)
	}

	return nil
}

// Load writes vals starting at linear offset lo. The whole window must fit;
// nothing is written otherwise.
// Complexity: O(len(vals)).
func (s *Store) Load(lo int, vals []bool) error {
	if err := s.checkRange(lo, lo+len(vals)); err != nil {
		return storeErrorf(opLoad, err)
	}
	s.lazy()
	for k, v := range vals {
		s.bits.SetTo(uint(lo+k), v)
	}

	return nil
}

// Slice returns an owned copy of the bits in [lo, hi).
// Complexity: O(hi-lo).
func (s *Store) Slice(lo, hi int) ([]bool, error) {
	if err := s.checkRange(lo, hi); err != nil {
		return nil, storeErrorf(opSlice, err)
	}
	s.lazy()
	out := make([]bool, hi-lo)
	for k := range out {
		out[k] = s.bits.Test(uint(lo + k))
	}

	return out, nil
}

// CopyRange copies n bits from src[srcLo:] into s[dstLo:]. Both windows are
// validated before any bit is written. src may be s itself only when the
// windows do not overlap.
// Complexity: O(n).
func (s *Store) CopyRange(dstLo int, src *Store, srcLo, n int) error {
	if n < 0 {
		return storeErrorf(opCopy, ErrBadRange)
	}
	if err := s.checkRange(dstLo, dstLo+n); err != nil {
		return storeErrorf(opCopy, err)
	}
	if err := src.checkRange(srcLo, srcLo+n); err != nil {
		return storeErrorf(opCopy, err)
	}
	s.lazy()
	src.lazy()
	for k := 0; k < n; k++ {
		s.bits.SetTo(uint(dstLo+k), src.bits.Test(uint(srcLo+k)))
	}

	return nil
}

// Resize changes the length to n. The first min(Len(), n) bits keep their
// values; bits past the old length take def. The backing words are freshly
// allocated and the surviving prefix copied word by word.
// A negative n is a programmer error and panics.
// Complexity: O(n/64).
func (s *Store) Resize(n int, def bool) {
	if n < 0 {
		panic(ErrNegativeLength)
	}
	s.lazy()
	keep := min(s.n, n)

	fresh := bitset.New(uint(n))
	words := fresh.Words()
	copy(words, s.bits.Words())
	// Shrinking can leave old bits past n in the last word.
	if r := uint(n) % wordBits; r != 0 && len(words) > 0 {
		words[len(words)-1] &= (uint64(1) << r) - 1
	}
	if def && n > keep {
		fresh.FlipRange(uint(keep), uint(n))
	}

	s.n = n
	s.bits = fresh
}

// And replaces s with s AND other. Lengths must match.
// Complexity: O(n/64).
func (s *Store) And(other *Store) error {
	if err := s.sameLen(other); err != nil {
		return storeErrorf(opAnd, err)
	}
	s.bits.InPlaceIntersection(other.bits)

	return nil
}

// Or replaces s with s OR other. Lengths must match.
// Complexity: O(n/64).
func (s *Store) Or(other *Store) error {
	if err := s.sameLen(other); err != nil {
		return storeErrorf(opOr, err)
	}
	s.bits.InPlaceUnion(other.bits)

	return nil
}

// Xor replaces s with s XOR other. Lengths must match.
// Complexity: O(n/64).
func (s *Store) Xor(other *Store) error {
	if err := s.sameLen(other); err != nil {
		return storeErrorf(opXor, err)
	}
	s.bits.InPlaceSymmetricDifference(other.bits)

	return nil
}

// Not inverts every bit in place.
// Complexity: O(n/64).
func (s *Store) Not() {
	s.lazy()
	s.bits.FlipRange(0, uint(s.n))
}

// sameLen validates equal lengths and materialises both backings.
func (s *Store) sameLen(other *Store) error {
	if other == nil || s.n != other.n {
		return ErrLengthMismatch
	}
	s.lazy()
	other.lazy()

	return nil
}

// Count returns the number of set bits.
// Complexity: O(n/64).
func (s *Store) Count() int {
	if s.bits == nil {
		return 0
	}

	return int(s.bits.Count())
}

// Equal reports whether both stores have the same length and bits.
// Complexity: O(n/64).
func (s *Store) Equal(other *Store) bool {
	if other == nil || s.n != other.n {
		return false
	}
	s.lazy()
	other.lazy()

	return s.bits.Equal(other.bits)
}

// Clone returns an independent copy; no backing words are shared.
// Complexity: O(n/64).
func (s *Store) Clone() *Store {
	s.lazy()

	return &Store{n: s.n, bits: s.bits.Clone()}
}

// Ones calls f with the index of every set bit in ascending order and stops
// early when f returns false.
// Complexity: O(n/64 + k) for k set bits.
func (s *Store) Ones(f func(i int) bool) {
	if s.bits == nil {
		return
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if !f(int(i)) {
			return
		}
	}
}

// String renders the bits as '0'/'1' characters in index order.
func (s *Store) String() string {
	var b strings.Builder
	b.Grow(s.n)
	s.lazy()
	for i := 0; i < s.n; i++ {
		if s.bits.Test(uint(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
