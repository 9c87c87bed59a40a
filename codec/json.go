// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/bitmatrix/matrix"
)

// jsonRecord mirrors matrix.Record with pointer fields so that missing keys
// and null values stay distinguishable from zero values.
type jsonRecord struct {
	Rows *uint64  `json:"rows"`
	Cols *uint64  `json:"cols"`
	Bits *[]*bool `json:"bits"`
}

var (
	errMissingField = errors.New("missing or null field")
	errNullBit      = errors.New("null bit entry")
	errTrailingData = errors.New("trailing data after document")
)

// JSON is a Record codec backed by github.com/goccy/go-json.
// Output shape: {"rows":R,"cols":C,"bits":[false,true,...]} with bits in
// row-major order. Decoding is strict: all three keys must be present and
// non-null, unknown keys are rejected, and every bit entry must be true or
// false.
type JSON struct {
	opts Options
}

// NewJSON returns a JSON codec configured with opts.
func NewJSON(opts ...Option) *JSON {
	return &JSON{opts: gatherOptions(opts...)}
}

// Name returns the stable codec name.
func (*JSON) Name() string { return NameJSON }

// Marshal encodes m's Record as JSON.
func (c *JSON) Marshal(m *matrix.BitMatrix) ([]byte, error) {
	if err := checkNil(NameJSON, m); err != nil {
		return nil, err
	}
	out, err := gojson.Marshal(m.ToRecord())
	if err != nil {
		err = codecErrorf(NameJSON, opMarshal, err)
	}

	return finishEncode(&c.opts, NameJSON, m, out, err)
}

// Unmarshal decodes a JSON Record and rebuilds the matrix.
func (c *JSON) Unmarshal(data []byte) (*matrix.BitMatrix, error) {
	rec, err := decodeJSONRecord(data)
	if err != nil {
		return finishDecode(&c.opts, NameJSON, data, nil, malformed(NameJSON, err))
	}
	m, err := matrix.FromRecord(rec)
	if err != nil {
		err = codecErrorf(NameJSON, opUnmarshal, err)
	}

	return finishDecode(&c.opts, NameJSON, data, m, err)
}

// decodeJSONRecord parses exactly one strict jsonRecord document.
func decodeJSONRecord(data []byte) (matrix.Record, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var jr jsonRecord
	if err := dec.Decode(&jr); err != nil {
		return matrix.Record{}, err
	}
	var rest gojson.RawMessage
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return matrix.Record{}, errTrailingData
	}
	if jr.Rows == nil || jr.Cols == nil || jr.Bits == nil {
		return matrix.Record{}, errMissingField
	}

	bits := make([]bool, len(*jr.Bits))
	for k, b := range *jr.Bits {
		if b == nil {
			return matrix.Record{}, errNullBit
		}
		bits[k] = *b
	}

	return matrix.Record{Rows: *jr.Rows, Cols: *jr.Cols, Bits: bits}, nil
}
