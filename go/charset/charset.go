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

// Package charset implements the codec registry of the strand runtime:
// named character sets exposing rune-level encode and decode, plus
// conversion between any two registered character sets.
package charset

import (
	"unicode/utf8"
)

// RuneError is the codepoint returned by DecodeRune on failure.
const RuneError = utf8.RuneError

// Charset is a character set: a mapping between byte sequences and
// codepoints.
type Charset interface {
	// Name is the canonical name this charset registers under.
	Name() string

	// DecodeRune decodes the first codepoint in bytes. On failure it
	// returns RuneError with a width that distinguishes the two failure
	// modes: width 0 means bytes is an incomplete prefix of a valid
	// sequence (more bytes may complete it), width 1 means the leading
	// bytes are invalid for this charset and can never become valid.
	// Failure widths must not exceed 1: a RuneError with a larger
	// width is a genuine U+FFFD decoded from the input.
	DecodeRune(bytes []byte) (rune, int)

	// EncodeRune writes the encoding of r to dst and returns the number
	// of bytes written, or -1 if this charset cannot represent r. dst
	// must have room for MaxWidth bytes.
	EncodeRune(dst []byte, r rune) int

	// MaxWidth is the largest number of bytes a single codepoint can
	// occupy in this charset. Streaming decoders use it to bound how
	// many bytes a sequence straddling a chunk boundary can need.
	MaxWidth() int

	// IsSuperset reports whether every byte sequence valid in other
	// decodes to the same codepoints under this charset.
	IsSuperset(other Charset) bool

	// SupportsSupplementaryChars reports whether codepoints outside the
	// Basic Multilingual Plane can be represented.
	SupportsSupplementaryChars() bool
}

// Validate reports whether data is fully valid for the given charset.
func Validate(cs Charset, data []byte) bool {
	if v, ok := cs.(interface{ Validate([]byte) bool }); ok {
		return v.Validate(data)
	}
	for len(data) > 0 {
		r, width := cs.DecodeRune(data)
		if r == RuneError && width <= 1 {
			return false
		}
		data = data[width:]
	}
	return true
}

// Length returns the number of codepoints in data for the given charset.
// Invalid or trailing incomplete sequences count as one codepoint per
// byte consumed.
func Length(cs Charset, data []byte) int {
	if l, ok := cs.(interface{ Length([]byte) int }); ok {
		return l.Length(data)
	}
	count := 0
	for len(data) > 0 {
		_, width := cs.DecodeRune(data)
		if width <= 0 {
			width = 1
		}
		data = data[width:]
		count++
	}
	return count
}

// Slice returns the byte range of data spanning the codepoints in
// [from, to). Out-of-range bounds are clamped.
func Slice(cs Charset, data []byte, from, to int) []byte {
	if from < 0 {
		from = 0
	}
	start := offsetOf(cs, data, from)
	end := offsetOf(cs, data, to)
	return data[start:end]
}

func offsetOf(cs Charset, data []byte, nth int) int {
	offset := 0
	for i := 0; i < nth && offset < len(data); i++ {
		_, width := cs.DecodeRune(data[offset:])
		if width <= 0 {
			width = 1
		}
		offset += width
	}
	return offset
}
