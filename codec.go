// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

package utf16stream

import (
	"io"
)

// Codec converts between Go strings and their UTF-16 wire form.
type Codec interface {
	// Marshal encodes a single string and returns the serialized byte slice.
	Marshal(s string) ([]byte, error)

	// Unmarshal decodes and returns the string stored in data.
	Unmarshal(data []byte) (string, error)

	NewDecoder(io.Reader) Decoder
	NewEncoder(io.Writer) Encoder
}

// Decoder reads successive values from a stream. For the line-delimited
// codec a value is one line, without its terminator.
type Decoder interface {
	Decode() (string, error)
}

// Encoder writes successive values to a stream.
type Encoder interface {
	Encode(s string) error
}
