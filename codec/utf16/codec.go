// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

// Package utf16 implements the string codec for a fixed byte order, both
// for whole values and as a line-delimited stream codec.
package utf16

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf16"

	"github.com/pkg/errors"

	utf16stream "github.com/ssbc/go-utf16stream"
	"github.com/ssbc/go-utf16stream/reader"
	"github.com/ssbc/go-utf16stream/writer"
)

var _ utf16stream.Codec = codec{}

// New creates a codec for the given byte order. Marshal output carries no
// byte order mark; callers that want one write it through writer.WriteBOM
// or prepend it themselves.
func New(ord binary.ByteOrder) utf16stream.Codec {
	return codec{ord: ord}
}

type codec struct {
	ord binary.ByteOrder
}

func (c codec) Marshal(s string) ([]byte, error) {
	units := utf16.Encode([]rune(s))
	data := make([]byte, 2*len(units))
	for i, u := range units {
		c.ord.PutUint16(data[2*i:], u)
	}
	return data, nil
}

// Unmarshal decodes through the same stream machinery as the readers, so
// the edge case policy is shared: trailing truncation ends the value
// cleanly, an invalid surrogate pair is an error.
func (c codec) Unmarshal(data []byte) (string, error) {
	chars := reader.NewChars(reader.NewShorts(bytes.NewReader(data), c.ord))

	var buf bytes.Buffer
	for {
		r, _, err := chars.ReadRune()
		if err == io.EOF {
			return buf.String(), nil
		}
		if err != nil {
			return "", errors.Wrap(err, "utf16stream: codec: decoding value")
		}
		buf.WriteRune(r)
	}
}

func (c codec) NewDecoder(r io.Reader) utf16stream.Decoder {
	return &decoder{lines: reader.NewLines(reader.NewChars(reader.NewShorts(r, c.ord)))}
}

func (c codec) NewEncoder(w io.Writer) utf16stream.Encoder {
	return &encoder{w: writer.New(w, c.ord)}
}

type decoder struct {
	lines *reader.Lines
}

// Decode returns the next line. It returns io.EOF once the stream is
// exhausted.
func (dec *decoder) Decode() (string, error) {
	return dec.lines.ReadLine()
}

type encoder struct {
	w *writer.Writer
}

// Encode writes s followed by a line feed, so Decode on the other side
// yields s again.
func (enc *encoder) Encode(s string) error {
	res, err := enc.w.WriteString(s)
	if err != nil {
		return errors.Wrap(err, "utf16stream: codec: encoding value")
	}
	if !res.Complete() {
		return errors.Wrapf(io.ErrShortWrite, "utf16stream: codec: %d code units unwritten", len(res.Missing))
	}
	return enc.w.WriteAllShorts([]uint16{'\n'})
}
