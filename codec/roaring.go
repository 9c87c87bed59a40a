// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/bitmatrix/layout"
	"github.com/katalvlaran/bitmatrix/matrix"
)

// roaringHeaderLen covers the big-endian rows and cols words.
const roaringHeaderLen = 8

// Roaring encodes the linear offsets of set cells as a roaring bitmap in
// its portable serialization, prefixed with rows and cols (big-endian
// uint32). Well suited to matrices that are mostly clear; the layout is
// still the row-major one, only the set offsets are stored.
// rows*cols must not exceed 1<<32 so every offset fits in uint32.
type Roaring struct {
	opts Options
}

// NewRoaring returns a Roaring codec configured with opts.
func NewRoaring(opts ...Option) *Roaring {
	return &Roaring{opts: gatherOptions(opts...)}
}

// Name returns the stable codec name.
func (*Roaring) Name() string { return NameRoaring }

// Marshal encodes m as header + run-optimized roaring bitmap.
func (c *Roaring) Marshal(m *matrix.BitMatrix) ([]byte, error) {
	if err := checkNil(NameRoaring, m); err != nil {
		return nil, err
	}
	rows, cols := m.Shape()
	if uint64(rows) > math.MaxUint32 || uint64(cols) > math.MaxUint32 || uint64(m.Len()) > math.MaxUint32+1 {
		return nil, codecErrorf(NameRoaring, opMarshal, ErrTooLarge)
	}

	rb := roaring.New()
	m.DoOnes(func(i, j int) bool {
		rb.Add(uint32(layout.Offset(i, j, cols)))
		return true
	})
	rb.RunOptimize()

	var buf bytes.Buffer
	var hdr [roaringHeaderLen]byte
	binary.BigEndian.PutUint32(hdr[0:], uint32(rows))
	binary.BigEndian.PutUint32(hdr[4:], uint32(cols))
	buf.Write(hdr[:])
	_, err := rb.WriteTo(&buf)
	if err != nil {
		err = codecErrorf(NameRoaring, opMarshal, err)
	}

	return finishEncode(&c.opts, NameRoaring, m, buf.Bytes(), err)
}

// Unmarshal decodes header + bitmap. Offsets at or beyond rows*cols, and
// trailing bytes after the bitmap, are rejected as malformed.
func (c *Roaring) Unmarshal(data []byte) (*matrix.BitMatrix, error) {
	m, err := c.decode(data)

	return finishDecode(&c.opts, NameRoaring, data, m, err)
}

func (c *Roaring) decode(data []byte) (*matrix.BitMatrix, error) {
	if len(data) < roaringHeaderLen {
		return nil, codecErrorf(NameRoaring, opUnmarshal, ErrMalformedData)
	}
	rows := int(binary.BigEndian.Uint32(data[0:]))
	cols := int(binary.BigEndian.Uint32(data[4:]))
	n, ok := layout.Len(rows, cols)
	if !ok || uint64(n) > math.MaxUint32+1 {
		return nil, codecErrorf(NameRoaring, opUnmarshal, ErrMalformedData)
	}

	rb := roaring.New()
	body := data[roaringHeaderLen:]
	read, err := rb.ReadFrom(bytes.NewReader(body))
	if err != nil {
		return nil, malformed(NameRoaring, err)
	}
	if read != int64(len(body)) {
		return nil, codecErrorf(NameRoaring, opUnmarshal, ErrMalformedData)
	}
	if !rb.IsEmpty() && uint64(rb.Maximum()) >= uint64(n) {
		return nil, codecErrorf(NameRoaring, opUnmarshal, ErrMalformedData)
	}

	m, err := matrix.New(rows, cols, false)
	if err != nil {
		return nil, codecErrorf(NameRoaring, opUnmarshal, err)
	}
	it := rb.Iterator()
	for it.HasNext() {
		i, j := layout.Coords(int(it.Next()), cols) // offsets < n imply cols > 0
		_ = m.Set(i, j, true)
	}

	return m, nil
}
