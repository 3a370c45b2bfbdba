// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

package reader

import (
	"context"
	"io"
	"strings"

	"github.com/ssbc/go-luigi"
)

var _ luigi.Source = (*Lines)(nil)

// Lines splits a rune stream into lines. It is forward-only and not
// restartable; once ReadLine returned io.EOF the stream stays exhausted.
type Lines struct {
	src io.RuneReader
}

// NewLines returns a line stream over src, usually a *Chars.
func NewLines(src io.RuneReader) *Lines {
	return &Lines{src: src}
}

// ReadLine accumulates runes until a line feed or the end of the stream and
// returns the line without its terminator. A trailing "\r\n" is stripped
// like a bare "\n". The final line is returned even if the stream ends
// without a terminator; io.EOF is only returned once no runes are left.
//
// A decode error aborts the line and is returned immediately.
func (l *Lines) ReadLine() (string, error) {
	var buf strings.Builder
	for {
		r, _, err := l.src.ReadRune()
		if err == io.EOF {
			if buf.Len() == 0 {
				return "", io.EOF
			}
			return buf.String(), nil
		}
		if err != nil {
			return "", err
		}
		if r == '\n' {
			line := buf.String()
			line = strings.TrimSuffix(line, "\r")
			return line, nil
		}
		buf.WriteRune(r)
	}
}

// Next implements luigi.Source, yielding string values and luigi.EOS at the
// end of the stream.
func (l *Lines) Next(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	line, err := l.ReadLine()
	if err == io.EOF {
		return nil, luigi.EOS{}
	}
	if err != nil {
		return nil, err
	}
	return line, nil
}
