// SPDX-License-Identifier: MIT

package codec_test

import (
	"encoding/binary"
	"strconv"
	"strings"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitmatrix/codec"
	"github.com/katalvlaran/bitmatrix/matrix"
)

// diag23 is the 2×3 matrix with cells (0,0) and (1,1) set.
func diag23(tb testing.TB) *matrix.BitMatrix {
	tb.Helper()
	m, err := matrix.FromRows([][]bool{{true, false, false}, {false, true, false}})
	require.NoError(tb, err)

	return m
}

func TestJSONShape(t *testing.T) {
	data, err := codec.NewJSON().Marshal(diag23(t))
	require.NoError(t, err)
	require.Equal(t, `{"rows":2,"cols":3,"bits":[true,false,false,false,true,false]}`, string(data))

	empty, err := matrix.New(0, 4, false)
	require.NoError(t, err)
	data, err = codec.NewJSON().Marshal(empty)
	require.NoError(t, err)
	require.Equal(t, `{"rows":0,"cols":4,"bits":[]}`, string(data))
}

func TestJSONMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"non-bool entry":   `{"rows":1,"cols":2,"bits":[true,1]}`,
		"short bits":       `{"rows":1,"cols":2,"bits":[true]}`,
		"long bits":        `{"rows":1,"cols":1,"bits":[true,false]}`,
		"negative rows":    `{"rows":-1,"cols":2,"bits":[]}`,
		"not an object":    `[1,2,3]`,
		"string dimension": `{"rows":"1","cols":1,"bits":[true]}`,
		"null entry":       `{"rows":1,"cols":2,"bits":[true,null]}`,
		"null bits":        `{"rows":0,"cols":0,"bits":null}`,
		"missing bits":     `{"rows":0,"cols":0}`,
		"missing rows":     `{"cols":0,"bits":[]}`,
		"null rows":        `{"rows":null,"cols":0,"bits":[]}`,
		"unknown key":      `{"rows":1,"cols":1,"bits":[true],"extra":5}`,
		"empty object":     `{}`,
		"null document":    `null`,
		"trailing data":    `{"rows":1,"cols":1,"bits":[true]} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.NewJSON().Unmarshal([]byte(in))
			require.ErrorIs(t, err, codec.ErrMalformedData)
		})
	}
}

func TestJSONAcceptsEmpty(t *testing.T) {
	in := `{"rows":0,"cols":3,"bits":[]}`
	m, err := codec.NewJSON().Unmarshal([]byte(in))
	require.NoError(t, err)
	require.Equal(t, 3, m.Cols())

	out, err := codec.NewJSON().Marshal(m)
	require.NoError(t, err)
	require.Equal(t, in, string(out))
}

func TestYAMLShape(t *testing.T) {
	data, err := codec.NewYAML().Marshal(diag23(t))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "rows: 2\ncols: 3\nbits:\n"), string(data))

	m, err := codec.NewYAML().Unmarshal([]byte("rows: 1\ncols: 2\nbits: [false, true]\n"))
	require.NoError(t, err)
	v, err := m.Get(0, 1)
	require.NoError(t, err)
	require.True(t, v)
}

func TestYAMLMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"numeric entry": "rows: 1\ncols: 1\nbits: [1]\n",
		"unknown key":   "rows: 1\ncols: 1\nbits: [true]\nextra: 1\n",
		"short bits":    "rows: 2\ncols: 1\nbits: [true]\n",
		"null entry":    "rows: 1\ncols: 2\nbits: [true, ~]\n",
		"empty":         "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.NewYAML().Unmarshal([]byte(in))
			require.ErrorIs(t, err, codec.ErrMalformedData)
		})
	}
}

func TestXDRShape(t *testing.T) {
	data, err := codec.NewXDR().Marshal(diag23(t))
	require.NoError(t, err)
	require.Equal(t, []byte{
		0, 0, 0, 2, // rows
		0, 0, 0, 3, // cols
		0, 0, 0, 1, // opaque length
		0x11, 0, 0, 0, // offsets 0 and 4, XDR padding
	}, data)

	bad := append([]byte(nil), data...)
	bad[12] = 0x51 // bit 6 lies past rows*cols
	_, err = codec.NewXDR().Unmarshal(bad)
	require.ErrorIs(t, err, codec.ErrMalformedData)
}

func TestRoaringShape(t *testing.T) {
	data, err := codec.NewRoaring().Marshal(diag23(t))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 2, 0, 0, 0, 3}, data[:8])

	rb := roaring.New()
	_, err = rb.FromBuffer(data[8:])
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 4}, rb.ToArray())
}

func TestRoaringOffsetOutOfRange(t *testing.T) {
	body, err := roaring.BitmapOf(5).ToBytes()
	require.NoError(t, err)
	data := make([]byte, 8, 8+len(body))
	binary.BigEndian.PutUint32(data[0:], 1)
	binary.BigEndian.PutUint32(data[4:], 2)
	data = append(data, body...)

	_, err = codec.NewRoaring().Unmarshal(data)
	require.ErrorIs(t, err, codec.ErrMalformedData)

	_, err = codec.NewRoaring().Unmarshal(append(data[:8:8], append(body, 0)...))
	require.ErrorIs(t, err, codec.ErrMalformedData, "trailing byte")
}

func TestTooLarge(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("dimension above uint32 needs 64-bit int")
	}
	var shift uint = 32
	wide, err := matrix.New(1<<shift, 0, false)
	require.NoError(t, err)
	for _, name := range []string{codec.NameXDR, codec.NameRoaring, codec.NameXDRZstd} {
		_, err := codec.MustByName(name).Marshal(wide)
		require.ErrorIs(t, err, codec.ErrTooLarge, name)
	}
}

func TestCompressedBlock(t *testing.T) {
	zeros, err := matrix.New(64, 64, false)
	require.NoError(t, err)
	raw, err := codec.NewXDR().Marshal(zeros)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		id   byte
	}{{codec.NameXDRZstd, 2}, {codec.NameXDRLZ4, 1}} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := codec.MustByName(tc.name).Marshal(zeros)
			require.NoError(t, err)
			require.Equal(t, tc.id, data[0])
			require.Equal(t, uint32(len(raw)), binary.LittleEndian.Uint32(data[1:]))
			require.NotZero(t, binary.LittleEndian.Uint32(data[5:]), "all-zero payload compresses")
			require.Less(t, len(data), len(raw))
		})
	}
}

func TestCompressedStoredRaw(t *testing.T) {
	m := randomMatrix(t, 16, 16, 3, 0.5)
	c := codec.NewCompressed(codec.NewXDR(), codec.AlgoZstd, codec.WithMinRatio(0.01))
	data, err := c.Marshal(m)
	require.NoError(t, err)
	require.Zero(t, binary.LittleEndian.Uint32(data[5:]), "ratio not met: stored raw")

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestCompressedRejects(t *testing.T) {
	m := randomMatrix(t, 32, 32, 5, 0.1)
	data, err := codec.MustByName(codec.NameXDRZstd).Marshal(m)
	require.NoError(t, err)

	_, err = codec.MustByName(codec.NameXDRLZ4).Unmarshal(data)
	require.ErrorIs(t, err, codec.ErrMalformedData, "algorithm byte mismatch")

	_, err = codec.NewCompressed(codec.NewXDR(), codec.AlgoZstd, codec.WithMaxPayload(8)).Unmarshal(data)
	require.ErrorIs(t, err, codec.ErrMalformedData)
	require.ErrorIs(t, err, codec.ErrTooLarge)

	garbled := append([]byte(nil), data...)
	for k := 9; k < len(garbled); k++ {
		garbled[k] ^= 0xA5
	}
	_, err = codec.MustByName(codec.NameXDRZstd).Unmarshal(garbled)
	require.ErrorIs(t, err, codec.ErrMalformedData)
}

func TestCompressionLevel(t *testing.T) {
	m := randomMatrix(t, 64, 64, 9, 0.02)
	for _, level := range []int{1, 3, 19} {
		c := codec.NewCompressed(codec.NewXDR(), codec.AlgoZstd, codec.WithCompressionLevel(level))
		data, err := c.Marshal(m)
		require.NoError(t, err)
		got, err := c.Unmarshal(data)
		require.NoError(t, err)
		require.True(t, got.Equal(m), "level %d", level)
	}
}
