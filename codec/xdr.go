// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/binary"
	"math"

	xdr "github.com/nullstyle/go-xdr/xdr3"

	"github.com/katalvlaran/bitmatrix/bitstore"
	"github.com/katalvlaran/bitmatrix/matrix"
)

// xdrRecord is the XDR wire shape (RFC 4506):
//
//	struct { unsigned int rows; unsigned int cols; opaque packed<>; }
//
// packed holds the cells LSB-first in row-major order (see BitMatrix.Packed).
type xdrRecord struct {
	Rows   uint32
	Cols   uint32
	Packed []byte
}

// xdrHeaderLen covers rows, cols and the opaque length prefix.
const xdrHeaderLen = 12

// XDR is a compact binary codec backed by github.com/nullstyle/go-xdr.
// Dimensions must fit in uint32.
type XDR struct {
	opts Options
}

// NewXDR returns an XDR codec configured with opts.
func NewXDR(opts ...Option) *XDR {
	return &XDR{opts: gatherOptions(opts...)}
}

// Name returns the stable codec name.
func (*XDR) Name() string { return NameXDR }

// Marshal encodes m as an xdrRecord.
func (c *XDR) Marshal(m *matrix.BitMatrix) ([]byte, error) {
	if err := checkNil(NameXDR, m); err != nil {
		return nil, err
	}
	if uint64(m.Rows()) > math.MaxUint32 || uint64(m.Cols()) > math.MaxUint32 {
		return nil, codecErrorf(NameXDR, opMarshal, ErrTooLarge)
	}
	rec := xdrRecord{Rows: uint32(m.Rows()), Cols: uint32(m.Cols()), Packed: m.Packed()}

	var buf bytes.Buffer
	_, err := xdr.Marshal(&buf, &rec)
	if err != nil {
		err = codecErrorf(NameXDR, opMarshal, err)
	}

	return finishEncode(&c.opts, NameXDR, m, buf.Bytes(), err)
}

// Unmarshal decodes an xdrRecord. The total length is checked against the
// header before decoding, so a corrupt length prefix cannot trigger a large
// allocation and trailing bytes are rejected.
func (c *XDR) Unmarshal(data []byte) (*matrix.BitMatrix, error) {
	m, err := c.decode(data)

	return finishDecode(&c.opts, NameXDR, data, m, err)
}

func (c *XDR) decode(data []byte) (*matrix.BitMatrix, error) {
	if len(data) < xdrHeaderLen {
		return nil, codecErrorf(NameXDR, opUnmarshal, ErrMalformedData)
	}
	rows := uint64(binary.BigEndian.Uint32(data[0:]))
	cols := uint64(binary.BigEndian.Uint32(data[4:]))
	packedLen := bitstore.PackedLen64(rows * cols)
	if uint64(len(data)) != xdrHeaderLen+pad4(packedLen) {
		return nil, codecErrorf(NameXDR, opUnmarshal, ErrMalformedData)
	}

	var rec xdrRecord
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &rec); err != nil {
		return nil, malformed(NameXDR, err)
	}
	m, err := matrix.FromPacked(uint64(rec.Rows), uint64(rec.Cols), rec.Packed)
	if err != nil {
		return nil, codecErrorf(NameXDR, opUnmarshal, err)
	}

	return m, nil
}

// pad4 rounds n up to the XDR 4-byte alignment.
func pad4(n uint64) uint64 { return (n + 3) &^ 3 }
