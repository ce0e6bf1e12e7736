/**
 * Copyright (c) 2020, The Reason-Graphql-Go Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import "fmt"

// Error is a plain schema-construction or coercion error. It carries no
// source location: this engine does not own a lexer/parser, so location
// information belongs to whatever produced the ast.Document.
type Error struct {
	message string
	wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// NewError creates an *Error carrying message, optionally wrapping cause
// (which may be nil).
func NewError(message string, cause ...error) error {
	e := &Error{message: message}
	if len(cause) > 0 {
		e.wrapped = cause[0]
	}
	return e
}

// Errorf is a convenience wrapper equivalent to NewError(fmt.Sprintf(...)).
func Errorf(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...))
}
