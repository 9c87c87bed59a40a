// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/bitmatrix/matrix"
)

// Compression algorithms understood by NewCompressed.
const (
	AlgoZstd = "zstd"
	AlgoLZ4  = "lz4"
)

// Algorithm identifiers written into the block header.
const (
	algoIDLZ4  byte = 1
	algoIDZstd byte = 2
)

// Block header: [algo uint8][uncompressed uint32 LE][compressed uint32 LE].
// A compressed size of 0 means the payload follows stored as is.
const blockHeaderLen = 9

const (
	panicAlgoUnknown = "codec: NewCompressed: unknown compression algorithm"
	panicInnerNil    = "codec: NewCompressed: inner codec must not be nil"
)

var errSizeMismatch = errors.New("decompressed size mismatch")

// Compressed wraps another codec and compresses its output as a single
// block. Payloads that do not shrink below the configured ratio are stored
// raw behind the same header.
type Compressed struct {
	inner Codec
	algo  string
	id    byte
	opts  Options

	encoders sync.Pool // *zstd.Encoder
	decoders sync.Pool // *zstd.Decoder
}

// NewCompressed returns inner wrapped with algo (AlgoZstd or AlgoLZ4).
// Panics on a nil inner codec or an unknown algorithm.
func NewCompressed(inner Codec, algo string, opts ...Option) *Compressed {
	if inner == nil {
		panic(panicInnerNil)
	}
	var id byte
	switch algo {
	case AlgoZstd:
		id = algoIDZstd
	case AlgoLZ4:
		id = algoIDLZ4
	default:
		panic(panicAlgoUnknown)
	}

	return &Compressed{inner: inner, algo: algo, id: id, opts: gatherOptions(opts...)}
}

// Name returns "<inner>+<algo>", e.g. "xdr+zstd".
func (c *Compressed) Name() string { return c.inner.Name() + "+" + c.algo }

// Marshal encodes m with the inner codec, then compresses the result.
func (c *Compressed) Marshal(m *matrix.BitMatrix) ([]byte, error) {
	name := c.Name()
	raw, err := c.inner.Marshal(m)
	if err != nil {
		return nil, codecErrorf(name, opMarshal, err)
	}
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, codecErrorf(name, opMarshal, ErrTooLarge)
	}
	packed, err := c.compress(raw)
	if err != nil {
		err = codecErrorf(name, opMarshal, err)
	}

	return finishEncode(&c.opts, name, m, packed, err)
}

// Unmarshal reverses Marshal. The header must name this codec's algorithm
// and the sizes must account for every byte of data.
func (c *Compressed) Unmarshal(data []byte) (*matrix.BitMatrix, error) {
	name := c.Name()
	raw, err := c.decompress(name, data)
	if err != nil {
		return finishDecode(&c.opts, name, data, nil, err)
	}
	m, err := c.inner.Unmarshal(raw)
	if err != nil {
		err = codecErrorf(name, opUnmarshal, err)
	}

	return finishDecode(&c.opts, name, data, m, err)
}

func (c *Compressed) compress(raw []byte) ([]byte, error) {
	var body []byte
	if len(raw) > 0 {
		switch c.id {
		case algoIDZstd:
			enc, err := c.getEncoder()
			if err != nil {
				return nil, err
			}
			body = enc.EncodeAll(raw, nil)
			c.encoders.Put(enc)
		case algoIDLZ4:
			dst := make([]byte, lz4.CompressBlockBound(len(raw)))
			n, err := lz4.CompressBlock(raw, dst, nil)
			if err != nil {
				return nil, err
			}
			body = dst[:n] // n == 0: incompressible
		}
	}

	stored := len(body) == 0 || float64(len(body)) > float64(len(raw))*c.opts.minRatio
	if stored {
		body = raw
	}

	out := make([]byte, blockHeaderLen+len(body))
	out[0] = c.id
	binary.LittleEndian.PutUint32(out[1:], uint32(len(raw)))
	if !stored {
		binary.LittleEndian.PutUint32(out[5:], uint32(len(body)))
	}
	copy(out[blockHeaderLen:], body)

	return out, nil
}

func (c *Compressed) decompress(name string, data []byte) ([]byte, error) {
	if len(data) < blockHeaderLen || data[0] != c.id {
		return nil, codecErrorf(name, opUnmarshal, ErrMalformedData)
	}
	rawLen := uint64(binary.LittleEndian.Uint32(data[1:]))
	bodyLen := uint64(binary.LittleEndian.Uint32(data[5:]))
	if rawLen > uint64(c.opts.maxPayload) {
		return nil, malformed(name, fmt.Errorf("%w: block announces %d bytes", ErrTooLarge, rawLen))
	}
	body := data[blockHeaderLen:]

	if bodyLen == 0 {
		if uint64(len(body)) != rawLen {
			return nil, codecErrorf(name, opUnmarshal, ErrMalformedData)
		}
		return body, nil
	}
	if uint64(len(body)) != bodyLen {
		return nil, codecErrorf(name, opUnmarshal, ErrMalformedData)
	}

	raw := make([]byte, rawLen)
	switch c.id {
	case algoIDZstd:
		dec, err := c.getDecoder()
		if err != nil {
			return nil, codecErrorf(name, opUnmarshal, err)
		}
		decoded, err := dec.DecodeAll(body, raw[:0])
		c.decoders.Put(dec)
		if err != nil {
			return nil, malformed(name, err)
		}
		if uint64(len(decoded)) != rawLen {
			return nil, malformed(name, errSizeMismatch)
		}
		raw = decoded
	case algoIDLZ4:
		n, err := lz4.UncompressBlock(body, raw)
		if err != nil {
			return nil, malformed(name, err)
		}
		if uint64(n) != rawLen {
			return nil, malformed(name, errSizeMismatch)
		}
	}

	return raw, nil
}

func (c *Compressed) getEncoder() (*zstd.Encoder, error) {
	if v := c.encoders.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}

	return zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.opts.zstdLevel)),
		zstd.WithEncoderConcurrency(1))
}

func (c *Compressed) getDecoder() (*zstd.Decoder, error) {
	if v := c.decoders.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}

	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(uint64(c.opts.maxPayload)))
}
