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
	"unicode/utf8"
)

// Code points in the surrogate range are not valid for UTF-8 or UTF-16.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

type Charset_utf8 struct{}

func (Charset_utf8) Name() string {
	return "utf-8"
}

func (Charset_utf8) IsSuperset(other Charset) bool {
	switch other.(type) {
	case Charset_utf8, Charset_ascii:
		return true
	default:
		return false
	}
}

func (Charset_utf8) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	if !utf8.FullRune(p) {
		// A valid prefix that needs more bytes. Width 0 tells the
		// streaming layer to wait rather than fail.
		return RuneError, 0
	}
	return utf8.DecodeRune(p)
}

func (Charset_utf8) EncodeRune(dst []byte, r rune) int {
	if uint32(r) > utf8.MaxRune || (surrogateMin <= r && r <= surrogateMax) {
		return -1
	}
	return utf8.EncodeRune(dst, r)
}

func (Charset_utf8) MaxWidth() int {
	return utf8.UTFMax
}

func (Charset_utf8) SupportsSupplementaryChars() bool {
	return true
}

func (Charset_utf8) Validate(p []byte) bool {
	return utf8.Valid(p)
}

func (Charset_utf8) Length(p []byte) int {
	return utf8.RuneCount(p)
}

type Charset_utf16be struct{}

func (Charset_utf16be) Name() string {
	return "utf-16be"
}

func (Charset_utf16be) IsSuperset(other Charset) bool {
	switch other.(type) {
	case Charset_utf16be:
		return true
	default:
		return false
	}
}

func (Charset_utf16be) DecodeRune(b []byte) (rune, int) {
	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	const (
		surr1    = 0xd800
		surr2    = 0xdc00
		surr3    = 0xe000
		surrSelf = 0x10000
	)

	if len(b) < 2 {
		return RuneError, 0
	}

	r1 := uint16(b[1]) | uint16(b[0])<<8
	if r1 < surr1 || surr3 <= r1 {
		return rune(r1), 2
	}

	if surr2 <= r1 {
		// A low surrogate with no preceding high surrogate can never
		// become valid.
		return RuneError, 1
	}

	if len(b) < 4 {
		return RuneError, 0
	}

	r2 := uint16(b[3]) | uint16(b[2])<<8
	if surr2 <= r2 && r2 < surr3 {
		return (rune(r1)-surr1)<<10 | (rune(r2) - surr2) + surrSelf, 4
	}

	return RuneError, 1
}

func (Charset_utf16be) EncodeRune(dst []byte, r rune) int {
	const surrSelf = 0x10000

	switch {
	case r < 0 || (surrogateMin <= r && r <= surrogateMax) || r > utf8.MaxRune:
		return -1
	case r < surrSelf:
		dst[0] = byte(r >> 8)
		dst[1] = byte(r)
		return 2
	default:
		r -= surrSelf
		dst[0] = byte(0xD8 | (r >> 18))
		dst[1] = byte(r >> 10)
		dst[2] = byte(0xDC | ((r >> 8) & 0x3))
		dst[3] = byte(r)
		return 4
	}
}

func (Charset_utf16be) MaxWidth() int {
	return 4
}

func (Charset_utf16be) SupportsSupplementaryChars() bool {
	return true
}
