// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

// Package utf16stream lets byte-oriented readers and writers be used as
// UTF-16 text streams, in either byte order, with or without knowing up
// front which order the stream uses.
//
// The reader side is built from three layers: reader.Shorts yields 16-bit
// code units, reader.Chars decodes them into runes (handling surrogate
// pairs), and reader.Lines splits the rune stream into lines. The auto
// package wraps all three behind a handle that picks the byte order from a
// leading byte order mark. The writer side is the writer package, which
// encodes strings and code-unit slices with explicit partial-progress
// reporting.
//
// All iterators also implement luigi.Source, and the writer provides a
// luigi.Sink, so streams compose with the luigi utilities.
package utf16stream

// The byte order mark scalar and its appearance when the stream uses the
// opposite byte order from the one it is read in.
const (
	BOM        uint16 = 0xFEFF
	BOMSwapped uint16 = 0xFFFE
)

// ShortReader reads a single UTF-16 code unit per call.
//
// ReadShort returns io.EOF once the stream is cleanly exhausted. A stream
// that ends one byte into a code unit counts as cleanly exhausted too, so
// truncated input never produces half a unit.
type ShortReader interface {
	ReadShort() (uint16, error)
}

// ShortWriter writes a single UTF-16 code unit per call.
type ShortWriter interface {
	WriteShort(uint16) error
}
