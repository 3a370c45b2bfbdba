// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

// Package reader turns a byte-oriented io.Reader into streams of UTF-16
// code units, runes and lines. Each layer wraps the previous one and all of
// them double as luigi sources.
package reader

import (
	"context"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	utf16stream "github.com/ssbc/go-utf16stream"
	"github.com/ssbc/go-utf16stream/internal/ioerr"
)

var _ utf16stream.ShortReader = (*Shorts)(nil)
var _ luigi.Source = (*Shorts)(nil)

// Shorts reads successive 16-bit code units from r in the given byte order.
type Shorts struct {
	r   io.Reader
	ord binary.ByteOrder
	buf [2]byte
}

// NewShorts returns a code unit stream over r. The byte order is fixed for
// the lifetime of the stream.
func NewShorts(r io.Reader, ord binary.ByteOrder) *Shorts {
	return &Shorts{r: r, ord: ord}
}

// Order returns the byte order the stream was created with.
func (s *Shorts) Order() binary.ByteOrder { return s.ord }

// ReadShort returns the next code unit. Transient interruptions of the
// underlying reader are retried and never surfaced; a byte already consumed
// by an interrupted read is kept, so the retry resumes mid-unit instead of
// desynchronizing the stream. io.EOF means the stream ended cleanly; this
// includes a stream ending one byte into a unit.
//
// A non-EOF error is not latched. Calling ReadShort again retries from the
// current stream position.
func (s *Shorts) ReadShort() (uint16, error) {
	var n int
	for n < 2 {
		m, err := io.ReadFull(s.r, s.buf[n:])
		n += m
		if err == nil {
			break
		}
		if ioerr.Transient(err) {
			continue
		}
		if ioerr.EOF(err) {
			return 0, io.EOF
		}
		return 0, errors.Wrap(err, "utf16stream: reading code unit")
	}
	return s.ord.Uint16(s.buf[:]), nil
}

// Next implements luigi.Source, yielding uint16 values and luigi.EOS at the
// end of the stream.
func (s *Shorts) Next(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, err := s.ReadShort()
	if err == io.EOF {
		return nil, luigi.EOS{}
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
