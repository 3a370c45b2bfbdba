// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

package utf16stream

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidSurrogateError is returned when a surrogate-range code unit is not
// followed by a matching partner. It carries both offending units.
type InvalidSurrogateError struct {
	First, Second uint16
}

func (e InvalidSurrogateError) Error() string {
	return fmt.Sprintf("utf16stream: invalid surrogate pair (0x%04X, 0x%04X)", e.First, e.Second)
}

// IsInvalidSurrogate returns whether a particular error is an invalid
// surrogate pair error.
func IsInvalidSurrogate(err error) bool {
	_, ok := errors.Cause(err).(InvalidSurrogateError)
	return ok
}

// InvalidBOMError is returned when auto-detection reads a first code unit
// that is neither byte order mark. The value is the unit that was seen,
// read as raw little endian.
type InvalidBOMError uint16

func (e InvalidBOMError) Error() string {
	return fmt.Sprintf("utf16stream: first code unit 0x%04X is not a byte order mark", uint16(e))
}

// IsInvalidBOM returns whether a particular error is an invalid byte order
// mark error.
func IsInvalidBOM(err error) bool {
	_, ok := errors.Cause(err).(InvalidBOMError)
	return ok
}
