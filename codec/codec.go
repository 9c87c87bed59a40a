// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/bitmatrix/matrix"
)

// Codec encodes/decodes bit matrices.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(m *matrix.BitMatrix) ([]byte, error)
	Unmarshal(data []byte) (*matrix.BitMatrix, error)
	Name() string
}

// Stable codec names. Persisted payloads are only readable by the codec
// that wrote them, so callers storing bytes should store the name as well.
const (
	NameJSON    = "json"
	NameYAML    = "yaml"
	NameXDR     = "xdr"
	NameRoaring = "roaring"
	NameXDRZstd = NameXDR + "+" + AlgoZstd
	NameXDRLZ4  = NameXDR + "+" + AlgoLZ4
)

// Names lists every built-in codec name in a stable order.
func Names() []string {
	return []string{NameJSON, NameYAML, NameXDR, NameRoaring, NameXDRZstd, NameXDRLZ4}
}

// ByName returns a built-in codec by its stable name, configured with opts.
// For compressed codecs opts apply to the wrapper; the inner codec stays
// silent so every call is logged once.
func ByName(name string, opts ...Option) (Codec, bool) {
	switch name {
	case NameJSON:
		return NewJSON(opts...), true
	case NameYAML:
		return NewYAML(opts...), true
	case NameXDR:
		return NewXDR(opts...), true
	case NameRoaring:
		return NewRoaring(opts...), true
	case NameXDRZstd:
		return NewCompressed(NewXDR(), AlgoZstd, opts...), true
	case NameXDRLZ4:
		return NewCompressed(NewXDR(), AlgoLZ4, opts...), true
	default:
		return nil, false
	}
}

// MustByName is ByName for static names; it panics on an unknown name.
func MustByName(name string, opts ...Option) Codec {
	c, ok := ByName(name, opts...)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownCodec, name))
	}

	return c
}

// checkNil rejects a nil matrix at the Marshal boundary.
func checkNil(name string, m *matrix.BitMatrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return codecErrorf(name, opMarshal, err)
	}

	return nil
}

// finishDecode logs the outcome of Unmarshal and normalises the return.
func finishDecode(o *Options, name string, data []byte, m *matrix.BitMatrix, err error) (*matrix.BitMatrix, error) {
	if err != nil {
		o.logDecoded(name, 0, 0, len(data), err)
		return nil, err
	}
	o.logDecoded(name, m.Rows(), m.Cols(), len(data), nil)

	return m, nil
}

// finishEncode logs the outcome of Marshal.
func finishEncode(o *Options, name string, m *matrix.BitMatrix, out []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	o.logEncoded(name, m.Rows(), m.Cols(), len(out))

	return out, nil
}
