// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

package reader

import (
	"context"
	"io"
	"unicode"
	"unicode/utf16"

	"github.com/ssbc/go-luigi"

	utf16stream "github.com/ssbc/go-utf16stream"
)

var _ io.RuneReader = (*Chars)(nil)
var _ luigi.Source = (*Chars)(nil)

// Chars decodes a code unit stream into runes, combining surrogate pairs.
type Chars struct {
	src utf16stream.ShortReader
}

// NewChars returns a rune stream over src. Both *Shorts and the auto
// package's reader satisfy the source interface.
func NewChars(src utf16stream.ShortReader) *Chars {
	return &Chars{src: src}
}

// ReadRune returns the next rune and the number of bytes consumed for it
// (2, or 4 for a surrogate pair). It returns io.EOF once the stream is
// exhausted.
//
// A surrogate-range unit followed by anything but its matching partner
// yields an InvalidSurrogateError carrying both units. A stream that ends
// right after a lone surrogate ends cleanly instead; truncation is not an
// error.
func (c *Chars) ReadRune() (rune, int, error) {
	first, err := c.src.ReadShort()
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(rune(first)) {
		return rune(first), 2, nil
	}

	second, err := c.src.ReadShort()
	if err != nil {
		// including a clean io.EOF: a truncated pair ends the stream
		return 0, 0, err
	}
	r := utf16.DecodeRune(rune(first), rune(second))
	if r == unicode.ReplacementChar {
		return 0, 0, utf16stream.InvalidSurrogateError{First: first, Second: second}
	}
	return r, 4, nil
}

// Next implements luigi.Source, yielding rune values and luigi.EOS at the
// end of the stream.
func (c *Chars) Next(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, _, err := c.ReadRune()
	if err == io.EOF {
		return nil, luigi.EOS{}
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
