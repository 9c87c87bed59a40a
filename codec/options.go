// SPDX-License-Identifier: MIT

// Package codec: functional configuration shared by every codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package codec

import (
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZstdLevel is the zstd compression level (1..22 scale); 3 matches
	// zstd.SpeedDefault.
	DefaultZstdLevel = 3

	// DefaultMinRatio is the compressed/raw size ratio above which a payload
	// is stored uncompressed.
	DefaultMinRatio = 0.9

	// DefaultMaxPayload caps the decoded size announced by a compressed block
	// header, so a corrupt header cannot force a huge allocation.
	DefaultMaxPayload = 256 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicZstdLevelInvalid  = "codec: WithCompressionLevel: level must be in [1,22]"
	panicMinRatioInvalid   = "codec: WithMinRatio: ratio must be in (0,1]"
	panicMaxPayloadInvalid = "codec: WithMaxPayload: limit must be > 0"
	panicLoggerNil         = "codec: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	logger     *slog.Logger // Debug on encode/decode, Warn on decode failure
	zstdLevel  int          // DefaultZstdLevel
	minRatio   float64      // DefaultMinRatio
	maxPayload int          // DefaultMaxPayload
}

// WithLogger routes codec diagnostics to l.
// Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// WithCompressionLevel sets the zstd level on the 1..22 scale.
func WithCompressionLevel(level int) Option {
	if level < 1 || level > 22 {
		panic(panicZstdLevelInvalid)
	}
	return func(o *Options) { o.zstdLevel = level }
}

// WithMinRatio sets the ratio above which compression is skipped.
// A ratio of 1 keeps every payload that shrinks at all.
func WithMinRatio(ratio float64) Option {
	if !(ratio > 0 && ratio <= 1) {
		panic(panicMinRatioInvalid)
	}
	return func(o *Options) { o.minRatio = ratio }
}

// WithMaxPayload caps the decoded payload size accepted from a block header.
func WithMaxPayload(limit int) Option {
	if limit <= 0 {
		panic(panicMaxPayloadInvalid)
	}
	return func(o *Options) { o.maxPayload = limit }
}

// discardLogger drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// gatherOptions applies user setters on top of the defaults, in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:     discardLogger(),
		zstdLevel:  DefaultZstdLevel,
		minRatio:   DefaultMinRatio,
		maxPayload: DefaultMaxPayload,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// logEncoded records a successful encode.
func (o *Options) logEncoded(name string, rows, cols, n int) {
	o.logger.Debug("matrix encoded", "codec", name, "rows", rows, "cols", cols, "bytes", n)
}

// logDecoded records a decode outcome; failures are logged at Warn.
func (o *Options) logDecoded(name string, rows, cols, n int, err error) {
	if err != nil {
		o.logger.Warn("matrix decode failed", "codec", name, "bytes", n, "err", err)
		return
	}
	o.logger.Debug("matrix decoded", "codec", name, "rows", rows, "cols", cols, "bytes", n)
}
