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

package charset

import (
	"golang.org/x/text/encoding/charmap"
)

// Charset_binary treats every byte as the codepoint of the same value.
// It accepts any input and can represent any codepoint up to 0xFF.
type Charset_binary struct{}

func (Charset_binary) Name() string {
	return "binary"
}

func (Charset_binary) IsSuperset(_ Charset) bool {
	return true
}

func (Charset_binary) DecodeRune(bytes []byte) (rune, int) {
	if len(bytes) < 1 {
		return RuneError, 0
	}
	return rune(bytes[0]), 1
}

func (Charset_binary) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > 0xFF {
		return -1
	}
	dst[0] = byte(r)
	return 1
}

func (Charset_binary) MaxWidth() int {
	return 1
}

func (Charset_binary) SupportsSupplementaryChars() bool {
	return true
}

// Charset_latin1 is ISO 8859-1. Every byte 0x00-0xFF maps to the
// codepoint of the same value, so decoding is total: there is no byte
// sequence latin-1 rejects. The coercion policy depends on this.
type Charset_latin1 struct{}

func (Charset_latin1) Name() string {
	return "latin-1"
}

func (Charset_latin1) IsSuperset(other Charset) bool {
	switch other.(type) {
	case Charset_latin1, Charset_ascii:
		return true
	default:
		return false
	}
}

func (Charset_latin1) DecodeRune(bytes []byte) (rune, int) {
	if len(bytes) < 1 {
		return RuneError, 0
	}
	return rune(bytes[0]), 1
}

func (Charset_latin1) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > 0xFF {
		return -1
	}
	dst[0] = byte(r)
	return 1
}

func (Charset_latin1) MaxWidth() int {
	return 1
}

func (Charset_latin1) SupportsSupplementaryChars() bool {
	return false
}

type Charset_ascii struct{}

func (Charset_ascii) Name() string {
	return "ascii"
}

func (Charset_ascii) IsSuperset(other Charset) bool {
	switch other.(type) {
	case Charset_ascii:
		return true
	default:
		return false
	}
}

func (Charset_ascii) DecodeRune(bytes []byte) (rune, int) {
	if len(bytes) < 1 {
		return RuneError, 0
	}
	if bytes[0] > 0x7F {
		return RuneError, 1
	}
	return rune(bytes[0]), 1
}

func (Charset_ascii) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > 0x7F {
		return -1
	}
	dst[0] = byte(r)
	return 1
}

func (Charset_ascii) MaxWidth() int {
	return 1
}

func (Charset_ascii) SupportsSupplementaryChars() bool {
	return false
}

// Charset_8bit adapts a single-byte x/text charmap table. Bytes the
// table leaves unmapped decode to RuneError and are reported as
// invalid, not incomplete.
type Charset_8bit struct {
	name string
	cm   *charmap.Charmap
}

// NewCharmap wraps cm as a registrable Charset under the given name.
func NewCharmap(name string, cm *charmap.Charmap) *Charset_8bit {
	return &Charset_8bit{name: name, cm: cm}
}

func (e *Charset_8bit) Name() string {
	return e.name
}

func (e *Charset_8bit) IsSuperset(other Charset) bool {
	return e == other
}

func (e *Charset_8bit) DecodeRune(bytes []byte) (rune, int) {
	if len(bytes) < 1 {
		return RuneError, 0
	}
	r := e.cm.DecodeByte(bytes[0])
	if r == RuneError {
		return RuneError, 1
	}
	return r, 1
}

func (e *Charset_8bit) EncodeRune(dst []byte, r rune) int {
	b, ok := e.cm.EncodeRune(r)
	if !ok {
		return -1
	}
	dst[0] = b
	return 1
}

func (e *Charset_8bit) MaxWidth() int {
	return 1
}

func (e *Charset_8bit) SupportsSupplementaryChars() bool {
	return false
}
