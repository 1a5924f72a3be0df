/*
Copyright 2026 The Strand Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package strerrors provides the error taxonomy for the strand runtime.
//
// Every failure that crosses a package boundary carries a Code so that
// callers can dispatch on the class of failure without string matching:
//
//	if strerrors.CodeOf(err) == strerrors.TruncatedStream {
//	    // wait for more bytes and retry
//	}
//
// Errors built by New/Errorf carry their code directly; Wrap/Wrapf
// preserve the code of the wrapped error. Foreign errors report Unknown.
package strerrors

import (
	"errors"
	"fmt"
)

// Code classifies a strand error.
type Code int

const (
	// Unknown is the code of any error that did not originate in this
	// package (or was created with an explicit Unknown code).
	Unknown Code = iota

	// UnknownCodec means a codec name has no registry entry. Not
	// recoverable at the call site; the caller must supply a valid name.
	UnknownCodec

	// MalformedInput means a byte sequence is invalid for the codec that
	// decoded it. The underlying error carries the byte offset of the
	// failure and whether the sequence was merely incomplete.
	MalformedInput

	// UnrepresentableCharacter means a codepoint has no encoding in the
	// target character set. The underlying error carries the codepoint
	// index. Writes that fail with this code are not partially applied.
	UnrepresentableCharacter

	// TruncatedStream means the channel ended in the middle of a
	// multi-byte sequence. Distinct from a clean EOF.
	TruncatedStream

	// IO wraps an opaque failure from the underlying channel, passed
	// through unmodified.
	IO
)

func (c Code) String() string {
	switch c {
	case UnknownCodec:
		return "UNKNOWN_CODEC"
	case MalformedInput:
		return "MALFORMED_INPUT"
	case UnrepresentableCharacter:
		return "UNREPRESENTABLE_CHARACTER"
	case TruncatedStream:
		return "TRUNCATED_STREAM"
	case IO:
		return "IO"
	default:
		return "UNKNOWN"
	}
}

// ErrorWithCode can be implemented by error types outside this package
// that want Code() to see through them.
type ErrorWithCode interface {
	ErrorCode() Code
}

type fundamental struct {
	code Code
	msg  string
}

func (f *fundamental) Error() string   { return f.msg }
func (f *fundamental) ErrorCode() Code { return f.code }

// New returns an error with the supplied message and code.
func New(code Code, msg string) error {
	return &fundamental{code: code, msg: msg}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error. Supports %w wrapping; the resulting
// error still reports the given code, not the wrapped error's code.
func Errorf(code Code, format string, args ...any) error {
	return &wrapping{code: code, err: fmt.Errorf(format, args...)}
}

type wrapping struct {
	code Code
	err  error
}

func (w *wrapping) Error() string   { return w.err.Error() }
func (w *wrapping) ErrorCode() Code { return w.code }
func (w *wrapping) Unwrap() error   { return w.err }

type coded struct {
	code  Code
	cause error
}

func (c *coded) Error() string   { return c.cause.Error() }
func (c *coded) ErrorCode() Code { return c.code }
func (c *coded) Unwrap() error   { return c.cause }

// WithCode attaches a code to err without changing its message. Used
// for errors passed through from external collaborators, which must
// surface unmodified but still need to be classifiable.
func WithCode(err error, code Code) error {
	if err == nil {
		return nil
	}
	return &coded{code: code, cause: err}
}

type wrapped struct {
	msg   string
	cause error
}

func (w *wrapped) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *wrapped) Unwrap() error { return w.cause }

// Wrap annotates err with a new message. If err is nil, Wrap returns nil.
// The wrapped error keeps err's code.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapped{msg: message, cause: err}
}

// Wrapf annotates err with the formatted message. If err is nil, Wrapf
// returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapped{msg: fmt.Sprintf(format, args...), cause: err}
}

// CodeOf returns the code carried by err or any error in its chain.
// A nil error has no code and reports Unknown.
func CodeOf(err error) Code {
	for err != nil {
		if coded, ok := err.(ErrorWithCode); ok {
			return coded.ErrorCode()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// RootCause walks the chain of wrapped errors and returns the innermost
// one. An unwrapped error is its own root cause.
func RootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
