// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bitmatrix/matrix"
)

// YAML is a Record codec backed by gopkg.in/yaml.v3.
// Keys are emitted in the order rows, cols, bits.
type YAML struct {
	opts Options
}

// NewYAML returns a YAML codec configured with opts.
func NewYAML(opts ...Option) *YAML {
	return &YAML{opts: gatherOptions(opts...)}
}

// Name returns the stable codec name.
func (*YAML) Name() string { return NameYAML }

// Marshal encodes m's Record as a YAML mapping.
func (c *YAML) Marshal(m *matrix.BitMatrix) ([]byte, error) {
	if err := checkNil(NameYAML, m); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(m.ToRecord())
	if err != nil {
		err = codecErrorf(NameYAML, opMarshal, err)
	}

	return finishEncode(&c.opts, NameYAML, m, out, err)
}

// Unmarshal decodes a YAML Record. Numeric bit entries such as 1, unknown
// keys and an empty document are rejected as malformed.
func (c *YAML) Unmarshal(data []byte) (*matrix.BitMatrix, error) {
	var rec matrix.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		return finishDecode(&c.opts, NameYAML, data, nil, malformed(NameYAML, err))
	}
	m, err := matrix.FromRecord(rec)
	if err != nil {
		err = codecErrorf(NameYAML, opUnmarshal, err)
	}

	return finishDecode(&c.opts, NameYAML, data, m, err)
}
