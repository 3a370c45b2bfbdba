// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

// Package writer encodes code units and strings as UTF-16 onto a
// byte-oriented io.Writer, with explicit reporting of partial progress.
package writer

import (
	"encoding/binary"
	"io"
	"unicode/utf16"

	"github.com/pkg/errors"

	utf16stream "github.com/ssbc/go-utf16stream"
	"github.com/ssbc/go-utf16stream/internal/ioerr"
)

var _ utf16stream.ShortWriter = (*Writer)(nil)

// Writer writes UTF-16 code units to w in the given byte order.
type Writer struct {
	w   io.Writer
	ord binary.ByteOrder
	buf [2]byte
}

// New returns a code unit writer over w. The byte order is fixed for the
// lifetime of the writer.
func New(w io.Writer, ord binary.ByteOrder) *Writer {
	return &Writer{w: w, ord: ord}
}

// Order returns the byte order the writer was created with.
func (w *Writer) Order() binary.ByteOrder { return w.ord }

// WriteShort writes a single code unit. Transient interruptions are retried
// internally, resuming with the bytes the destination has not accepted yet,
// so an interrupted call never duplicates a byte already on the wire. If
// the destination accepts nothing without erroring, it returns
// io.ErrShortWrite.
func (w *Writer) WriteShort(u uint16) error {
	w.ord.PutUint16(w.buf[:], u)
	var n int
	for n < 2 {
		m, err := w.w.Write(w.buf[n:])
		n += m
		if err != nil {
			if ioerr.Transient(err) {
				continue
			}
			return errors.Wrap(err, "utf16stream: writing code unit")
		}
		if m == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

// WriteShorts writes the units one at a time and returns how many were
// written. The contract is a best-effort prefix: an error on the very first
// unit is propagated, an error after at least one successful unit is
// swallowed and the count so far is returned as a success. Callers that
// need the whole buffer written should use WriteAllShorts.
func (w *Writer) WriteShorts(units []uint16) (int, error) {
	for i, u := range units {
		if err := w.WriteShort(u); err != nil {
			if i > 0 {
				return i, nil
			}
			return 0, err
		}
	}
	return len(units), nil
}

// WriteAllShorts writes every unit, retrying transient interruptions and
// re-attempting the remaining suffix after partial progress. If the
// destination accepts nothing and reports no error, it returns
// io.ErrShortWrite rather than looping forever.
func (w *Writer) WriteAllShorts(units []uint16) error {
	for len(units) > 0 {
		n, err := w.WriteShorts(units)
		if err != nil {
			if ioerr.Transient(err) {
				continue
			}
			return err
		}
		if n == 0 {
			return errors.Wrap(io.ErrShortWrite, "utf16stream: failed to write whole buffer")
		}
		units = units[n:]
	}
	return nil
}

// WriteBOM writes the byte order mark. Its raw byte pattern on the wire
// depends on the writer's order, which is what lets auto.NewBOM recover
// the order on the way back in.
func (w *Writer) WriteBOM() error {
	return w.WriteShort(utf16stream.BOM)
}

// Written reports how much of a string write completed. Missing holds the
// code units that were not written; a complete write has none.
type Written struct {
	Missing []uint16
}

// Complete returns true if the whole string was written.
func (wr Written) Complete() bool { return len(wr.Missing) == 0 }

// WriteString encodes s as UTF-16 and writes the units in order. An error
// on the very first unit is propagated raw, nothing has been committed at
// that point. An error on any later unit is reported as a Written with the
// unwritten suffix instead, so the caller can retry, log or abandon the
// rest deliberately.
func (w *Writer) WriteString(s string) (Written, error) {
	units := utf16.Encode([]rune(s))
	if len(units) == 0 {
		return Written{}, nil
	}
	if err := w.WriteShort(units[0]); err != nil {
		return Written{}, err
	}
	for i, u := range units[1:] {
		if err := w.WriteShort(u); err != nil {
			return Written{Missing: units[1+i:]}, nil
		}
	}
	return Written{}, nil
}
