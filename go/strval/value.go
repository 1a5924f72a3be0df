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

// Package strval implements the tagged string value of the strand
// runtime: a buffer that is either character data or octet data, never
// both, plus the coercion policy applied when the two kinds meet.
package strval

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/strandio/strand/go/charset"
	"github.com/strandio/strand/go/hack"
)

// Domain classifies what a Value's buffer holds.
type Domain int8

const (
	// Character values are sequences of codepoints.
	Character Domain = iota
	// Octet values are sequences of raw bytes with no character
	// interpretation attached.
	Octet
)

func (d Domain) String() string {
	switch d {
	case Character:
		return "Character"
	case Octet:
		return "Octet"
	default:
		return fmt.Sprintf("Domain(%d)", int8(d))
	}
}

// Value is an immutable string value tagged with its domain. Character
// values store their codepoints as UTF-8 internally; the representation
// is not observable through the API. A Value's domain never changes in
// place: decode and encode produce new values.
//
// The zero Value is an empty Character value.
type Value struct {
	domain Domain
	buf    []byte
}

// NewCharacter returns a Character value holding the codepoints of s.
func NewCharacter(s string) Value {
	return Value{domain: Character, buf: hack.StringBytes(s)}
}

// NewCharacterFromRunes returns a Character value holding exactly the
// given codepoints. Construction performs no validation beyond the
// codepoint range checks done by UTF-8 encoding.
func NewCharacterFromRunes(runes []rune) Value {
	return Value{domain: Character, buf: []byte(string(runes))}
}

// NewOctet returns an Octet value holding a copy of b.
func NewOctet(b []byte) Value {
	return Value{domain: Octet, buf: bytes.Clone(b)}
}

// DecodeValue interprets the Octet value v as cs-encoded bytes and
// returns the resulting Character value. Fails with a MalformedInput
// error (carrying the byte offset) if the bytes are not valid for cs.
func DecodeValue(cs charset.Charset, v Value) (Value, error) {
	if v.domain != Octet {
		return Value{}, fmt.Errorf("cannot decode a %v value", v.domain)
	}
	runes, err := charset.Decode(cs, v.buf)
	if err != nil {
		return Value{}, err
	}
	return NewCharacterFromRunes(runes), nil
}

// EncodeValue encodes the Character value v with cs and returns the
// resulting Octet value. Fails with an UnrepresentableCharacter error
// (carrying the codepoint index) if cs cannot represent a codepoint;
// in that case no partial value is returned.
func EncodeValue(cs charset.Charset, v Value) (Value, error) {
	if v.domain != Character {
		return Value{}, fmt.Errorf("cannot encode a %v value", v.domain)
	}
	encoded, err := charset.Convert(nil, cs, v.buf, charset.Charset_utf8{})
	if err != nil {
		return Value{}, err
	}
	return Value{domain: Octet, buf: encoded}, nil
}

// Domain returns the value's domain tag.
func (v Value) Domain() Domain {
	return v.domain
}

// IsCharacter reports whether v holds character data.
func (v Value) IsCharacter() bool {
	return v.domain == Character
}

// IsOctet reports whether v holds octet data.
func (v Value) IsOctet() bool {
	return v.domain == Octet
}

// Len returns the element count in the value's own domain: codepoints
// for Character values, bytes for Octet values. The two differ for any
// character whose encoding is longer than one byte.
func (v Value) Len() int {
	if v.domain == Character {
		return utf8.RuneCount(v.buf)
	}
	return len(v.buf)
}

// Runes returns the codepoints of a Character value, or nil for an
// Octet value (bytes have no codepoints until decoded).
func (v Value) Runes() []rune {
	if v.domain != Character {
		return nil
	}
	return []rune(hack.String(v.buf))
}

// Bytes returns the raw bytes of an Octet value, or the UTF-8 encoding
// of a Character value. The returned slice must not be modified.
func (v Value) Bytes() []byte {
	return v.buf
}

// Equal reports whether v and other are the same domain and the same
// element sequence. Values of different domains are never equal, even
// when their byte and codepoint sequences match numerically: an
// undecoded octet string is not the text it might spell.
func (v Value) Equal(other Value) bool {
	return v.domain == other.domain && bytes.Equal(v.buf, other.buf)
}

// String formats the value for diagnostics.
func (v Value) String() string {
	if v.domain == Character {
		return fmt.Sprintf("Character(%q)", hack.String(v.buf))
	}
	return fmt.Sprintf("Octet(%#x)", v.buf)
}
