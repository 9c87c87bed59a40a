// SPDX-License-Identifier: MIT

package bitstore

import (
	"encoding/binary"
)

// PackedLen returns the number of bytes needed to pack n bits.
func PackedLen(n int) int { return (n + 7) / 8 }

// PackedLen64 is PackedLen for unsigned lengths read from wire headers.
func PackedLen64(n uint64) uint64 { return n/8 + min(n%8, 1) }

// Pack returns the bits packed LSB-first: bit i lives in byte i/8 at bit
// position i%8. Padding bits in the last byte are zero.
// Complexity: O(n/8).
func (s *Store) Pack() []byte {
	s.lazy()
	words := s.bits.Words()
	buf := make([]byte, len(words)*8)
	for w, word := range words {
		binary.LittleEndian.PutUint64(buf[w*8:], word)
	}

	return buf[:PackedLen(s.n)]
}

// Unpack builds an n-bit store from Pack output. The buffer must be exactly
// PackedLen(n) bytes long and its padding bits must be zero.
// Complexity: O(n/8).
func Unpack(b []byte, n int) (*Store, error) {
	if n < 0 {
		return nil, storeErrorf(opUnpack, ErrNegativeLength)
	}
	if len(b) != PackedLen(n) {
		return nil, storeErrorf(opUnpack, ErrBadPacking)
	}
	if r := n % 8; r != 0 && b[len(b)-1]>>r != 0 {
		return nil, storeErrorf(opUnpack, ErrBadPacking)
	}

	s := New(n, false)
	words := s.bits.Words()
	var tmp [8]byte
	for w := range words {
		lo := w * 8
		hi := min(lo+8, len(b))
		tmp = [8]byte{}
		copy(tmp[:], b[lo:hi])
		words[w] = binary.LittleEndian.Uint64(tmp[:])
	}

	return s, nil
}
