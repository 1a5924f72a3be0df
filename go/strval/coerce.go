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

package strval

import (
	"bytes"
	"unicode/utf8"
)

// This file is the coercion policy: the single place where values of
// mismatched domain are reconciled before an operation combines them.
//
// The rules are deliberately total. A mixed Character/Octet pair is
// resolved by implicitly decoding the Octet side as latin-1, which maps
// every byte 0x00-0xFF to the codepoint of the same value and therefore
// cannot fail. When the octet data was actually encoded with some other
// charset, the result is silently wrong in a well-defined way: the
// bytes 0xC3 0xA9 (UTF-8 "é") coerce to the two characters "Ã©". That
// behavior is part of the model this runtime reproduces; callers who
// want the right answer must decode explicitly before combining.
//
// Octet/Octet pairs are combined byte-wise with no decoding at all.
// Whether the two streams share an encoding is unknowable here, so a
// mismatch goes undetected. Known hazard, not a defect.

// CoerceToCharacter returns v in the Character domain. Octet values are
// implicitly decoded as latin-1. Total: never fails.
func CoerceToCharacter(v Value) Value {
	if v.domain == Character {
		return v
	}
	// latin-1 bytes below 0x80 are already valid UTF-8; only the upper
	// half needs the two-byte expansion.
	if isASCII(v.buf) {
		return Value{domain: Character, buf: v.buf}
	}
	expanded := make([]byte, 0, len(v.buf)*2)
	for _, b := range v.buf {
		expanded = utf8.AppendRune(expanded, rune(b))
	}
	return Value{domain: Character, buf: expanded}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// Coerce resolves a and b into a common domain per the policy above and
// returns the transformed pair plus the resulting domain.
func Coerce(a, b Value) (Value, Value, Domain) {
	if a.domain == b.domain {
		return a, b, a.domain
	}
	return CoerceToCharacter(a), CoerceToCharacter(b), Character
}

// Concat concatenates a and b. Same-domain operands append element-wise
// and keep their domain; mixed-domain operands are coerced first, so
// the result is a Character value. Concat never fails.
func Concat(a, b Value) Value {
	ca, cb, domain := Coerce(a, b)
	joined := make([]byte, 0, len(ca.buf)+len(cb.buf))
	joined = append(joined, ca.buf...)
	joined = append(joined, cb.buf...)
	return Value{domain: domain, buf: joined}
}

// Compare orders a and b after coercing them into a common domain:
// codepoint-wise for Character results, byte-wise for Octet results.
// Returns -1, 0 or +1. Note that Compare can report 0 for a pair Equal
// rejects: equality is domain-aware, ordering is coercing.
func Compare(a, b Value) int {
	ca, cb, _ := Coerce(a, b)
	return bytes.Compare(ca.buf, cb.buf)
}
