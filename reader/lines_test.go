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
	"unicode/utf16"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/require"

	utf16stream "github.com/ssbc/go-utf16stream"
)

func newLines(s string) *Lines {
	data := le(utf16.Encode([]rune(s))...)
	return NewLines(newChars(data))
}

func TestLinesSplitting(t *testing.T) {
	r := require.New(t)

	tcs := []struct {
		name  string
		input string
		want  []string
	}{
		{"crlf and lf", "A\r\nB\n", []string{"A", "B"}},
		{"no trailing terminator", "A\r\nB", []string{"A", "B"}},
		{"empty line", "A\n\nB\n", []string{"A", "", "B"}},
		{"lone cr kept mid-line", "A\rB\n", []string{"A\rB"}},
		{"supplementary plane", "\U0001F600\nok", []string{"\U0001F600", "ok"}},
	}

	for _, tc := range tcs {
		lines := newLines(tc.input)
		var got []string
		for {
			line, err := lines.ReadLine()
			if err == io.EOF {
				break
			}
			r.NoError(err, tc.name)
			got = append(got, line)
		}
		r.Equal(tc.want, got, tc.name)
	}
}

func TestLinesEmptyStream(t *testing.T) {
	r := require.New(t)

	lines := newLines("")
	_, err := lines.ReadLine()
	r.Equal(io.EOF, err)
}

func TestLinesDecodeErrorAborts(t *testing.T) {
	r := require.New(t)

	// "AB", then a high surrogate followed by garbage
	lines := NewLines(newChars(le('A', 'B', 0xD83D, 'C')))

	_, err := lines.ReadLine()
	r.True(utf16stream.IsInvalidSurrogate(err), "got %v", err)
}

func TestLinesIOErrorAborts(t *testing.T) {
	r := require.New(t)

	broken := errors.New("gone away")
	src := &brokenReader{r: bytes.NewReader(le('A')), err: broken}
	lines := NewLines(NewChars(NewShorts(src, binary.LittleEndian)))

	_, err := lines.ReadLine()
	r.Error(err)
	r.Equal(broken, errors.Cause(err))
}

func TestLinesLuigiSource(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	lines := newLines("one\ntwo\n")

	v, err := lines.Next(ctx)
	r.NoError(err)
	r.Equal("one", v)

	v, err = lines.Next(ctx)
	r.NoError(err)
	r.Equal("two", v)

	_, err = lines.Next(ctx)
	r.True(luigi.IsEOS(err), "expected end of stream, got %v", err)
}
