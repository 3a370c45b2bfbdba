// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

package writer

import (
	"context"
	"io"
	"unicode/utf16"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
)

var _ luigi.Sink = (*Sink)(nil)

// Sink adapts a Writer to luigi.Sink so rune, string and code unit streams
// can be pumped into it.
type Sink struct {
	w *Writer
}

// NewSink returns a sink pouring into w.
func NewSink(w *Writer) *Sink {
	return &Sink{w: w}
}

// Pour writes v, which must be a string, rune or uint16. A string that only
// partially writes is reported as io.ErrShortWrite; use Writer.WriteString
// directly to get the unwritten suffix.
func (s *Sink) Pour(ctx context.Context, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		res, err := s.w.WriteString(v)
		if err != nil {
			return err
		}
		if !res.Complete() {
			return errors.Wrapf(io.ErrShortWrite, "utf16stream: sink: %d code units unwritten", len(res.Missing))
		}
		return nil
	case rune:
		return s.w.WriteAllShorts(utf16.Encode([]rune{v}))
	case uint16:
		return s.w.WriteShort(v)
	default:
		return errors.Errorf("utf16stream: sink: unsupported value type %T", v)
	}
}

// Close closes the underlying byte sink when it is an io.Closer.
func (s *Sink) Close() error {
	if c, ok := s.w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
