// SPDX-FileCopyrightText: 2022 The go-utf16stream Authors
//
// SPDX-License-Identifier: MIT

// Package ioerr classifies errors from the underlying byte source or sink.
package ioerr

import (
	"errors"
	"io"
	"syscall"
)

// Transient reports whether err is an interruption worth retrying silently,
// like EINTR surfacing through an *os.PathError, or anything advertising
// itself as temporary.
func Transient(err error) bool {
	if errors.Is(err, syscall.EINTR) {
		return true
	}
	var t interface{ Temporary() bool }
	if errors.As(err, &t) {
		return t.Temporary()
	}
	return false
}

// EOF reports whether err means the stream ended cleanly. io.ReadFull
// reports a stream that ends inside a code unit as io.ErrUnexpectedEOF;
// that counts as a clean end too, truncated input never yields half a unit.
func EOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
