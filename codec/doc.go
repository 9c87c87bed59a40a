// Package codec centralizes the encodings of matrix.Record.
//
// Every codec is a faithful, lossless encoding of a BitMatrix: the bits are
// always written in the row-major order defined by package layout, and
// Unmarshal(Marshal(m)) is Equal to m.
//
// Built-in codecs (see ByName):
//
//	json      {"rows":R,"cols":C,"bits":[...]}       github.com/goccy/go-json
//	yaml      rows/cols/bits mapping                  gopkg.in/yaml.v3
//	xdr       rows u32, cols u32, packed opaque<>     github.com/nullstyle/go-xdr
//	roaring   rows u32, cols u32, set-cell offsets    github.com/RoaringBitmap/roaring/v2
//	xdr+zstd  compressed block around xdr             github.com/klauspost/compress/zstd
//	xdr+lz4   compressed block around xdr             github.com/pierrec/lz4/v4
//
// Codec selection is a format boundary: bytes written by one codec are only
// readable by the same codec. Decoding failures always match
// matrix.ErrMalformedData via errors.Is.
//
// Codecs are immutable after construction and safe for concurrent use.
package codec
