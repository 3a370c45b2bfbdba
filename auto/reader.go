// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

// Package auto wraps the reader streams behind a handle whose byte order is
// either stated by the caller or detected from a leading byte order mark.
package auto

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	utf16stream "github.com/ssbc/go-utf16stream"
	"github.com/ssbc/go-utf16stream/internal/ioerr"
	"github.com/ssbc/go-utf16stream/reader"
)

var _ utf16stream.ShortReader = (*Reader)(nil)

// Reader reads UTF-16 from a byte stream in a byte order fixed at
// construction. All operations dispatch to that order; nothing ever
// changes it.
type Reader struct {
	ord    binary.ByteOrder
	shorts *reader.Shorts
}

// NewLittle returns a little endian reader over r.
func NewLittle(r io.Reader) *Reader {
	return &Reader{
		ord:    binary.LittleEndian,
		shorts: reader.NewShorts(r, binary.LittleEndian),
	}
}

// NewBig returns a big endian reader over r.
func NewBig(r io.Reader) *Reader {
	return &Reader{
		ord:    binary.BigEndian,
		shorts: reader.NewShorts(r, binary.BigEndian),
	}
}

// NewBOM reads one code unit as raw little endian to detect the byte order:
// 0xFEFF selects little endian, 0xFFFE big endian. Any other value fails
// with an InvalidBOMError and nothing past the mark is consumed. A stream
// too short to hold the mark is an error as well, not a clean end.
func NewBOM(r io.Reader) (*Reader, error) {
	var (
		buf [2]byte
		n   int
	)
	for n < 2 {
		m, err := io.ReadFull(r, buf[n:])
		n += m
		if err == nil {
			break
		}
		if ioerr.Transient(err) {
			continue
		}
		if ioerr.EOF(err) {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrap(err, "utf16stream: reading byte order mark")
	}

	switch binary.LittleEndian.Uint16(buf[:]) {
	case utf16stream.BOM:
		return NewLittle(r), nil
	case utf16stream.BOMSwapped:
		return NewBig(r), nil
	default:
		return nil, utf16stream.InvalidBOMError(binary.LittleEndian.Uint16(buf[:]))
	}
}

// Order returns the byte order in use.
func (r *Reader) Order() binary.ByteOrder { return r.ord }

// IsLittle returns true if this reader is little endian.
func (r *Reader) IsLittle() bool { return r.ord == binary.ByteOrder(binary.LittleEndian) }

// IsBig returns true if this reader is big endian.
func (r *Reader) IsBig() bool { return r.ord == binary.ByteOrder(binary.BigEndian) }

// ReadShort returns the next code unit in the detected order.
func (r *Reader) ReadShort() (uint16, error) {
	return r.shorts.ReadShort()
}

// Shorts returns the code unit stream.
func (r *Reader) Shorts() *reader.Shorts {
	return r.shorts
}

// Chars returns a rune stream over the code units.
func (r *Reader) Chars() *reader.Chars {
	return reader.NewChars(r.shorts)
}

// Lines returns a line stream over the runes.
func (r *Reader) Lines() *reader.Lines {
	return reader.NewLines(r.Chars())
}
