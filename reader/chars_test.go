// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

package reader

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/require"

	utf16stream "github.com/ssbc/go-utf16stream"
)

// le builds a little endian byte stream from code units.
func le(units ...uint16) []byte {
	data := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(data[2*i:], u)
	}
	return data
}

func newChars(data []byte) *Chars {
	return NewChars(NewShorts(bytes.NewReader(data), binary.LittleEndian))
}

func TestCharsBasicPlane(t *testing.T) {
	r := require.New(t)

	c := newChars(le('A', 0x00E9, 0x3042))

	for _, want := range []rune{'A', 'é', 'あ'} {
		got, size, err := c.ReadRune()
		r.NoError(err)
		r.Equal(want, got)
		r.Equal(2, size)
	}

	_, _, err := c.ReadRune()
	r.Equal(io.EOF, err)
}

func TestCharsSurrogatePair(t *testing.T) {
	r := require.New(t)

	// U+1F600 encodes as D83D DE00
	c := newChars(le(0xD83D, 0xDE00))

	got, size, err := c.ReadRune()
	r.NoError(err)
	r.Equal('\U0001F600', got)
	r.Equal(4, size)

	_, _, err = c.ReadRune()
	r.Equal(io.EOF, err)
}

func TestCharsTruncatedSurrogateIsCleanEOF(t *testing.T) {
	r := require.New(t)

	tcs := []struct {
		name string
		lead uint16
	}{
		{"high surrogate", 0xD83D},
		{"low surrogate", 0xDE00},
	}
	for _, tc := range tcs {
		c := newChars(le('A', tc.lead))

		got, _, err := c.ReadRune()
		r.NoError(err, tc.name)
		r.Equal('A', got)

		_, _, err = c.ReadRune()
		r.Equal(io.EOF, err, "%s: lone trailing surrogate should end cleanly", tc.name)
	}
}

func TestCharsInvalidPairing(t *testing.T) {
	r := require.New(t)

	tcs := []struct {
		name          string
		first, second uint16
	}{
		{"high followed by non-surrogate", 0xD83D, 'A'},
		{"high followed by high", 0xD83D, 0xD83D},
		{"low followed by non-surrogate", 0xDE00, 'A'},
		{"low followed by low", 0xDE00, 0xDE00},
	}

	for _, tc := range tcs {
		c := newChars(le(tc.first, tc.second))

		_, _, err := c.ReadRune()
		r.True(utf16stream.IsInvalidSurrogate(err), "%s: got %v", tc.name, err)

		var surr utf16stream.InvalidSurrogateError
		r.ErrorAs(err, &surr, tc.name)
		r.Equal(tc.first, surr.First, tc.name)
		r.Equal(tc.second, surr.Second, tc.name)
	}
}

func TestCharsIOErrorMidPair(t *testing.T) {
	r := require.New(t)

	broken := errors.New("cable pulled")
	src := &brokenReader{r: bytes.NewReader(le(0xD83D)), err: broken}
	c := NewChars(NewShorts(src, binary.LittleEndian))

	_, _, err := c.ReadRune()
	r.Error(err)
	r.Equal(broken, errors.Cause(err))
}

func TestCharsLuigiSource(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	c := newChars(le('h', 'i'))

	v, err := c.Next(ctx)
	r.NoError(err)
	r.Equal('h', v)

	v, err = c.Next(ctx)
	r.NoError(err)
	r.Equal('i', v)

	_, err = c.Next(ctx)
	r.True(luigi.IsEOS(err), "expected end of stream, got %v", err)
}
