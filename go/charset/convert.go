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

// Decode converts bytes encoded with cs into codepoints. On failure the
// successfully decoded prefix is returned together with a
// *MalformedError carrying the byte offset of the failure; the error's
// Incomplete flag is set when the offending bytes are a truncated
// trailing sequence rather than invalid ones, so a streaming caller can
// retry once more bytes arrive.
func Decode(cs Charset, bytes []byte) ([]rune, error) {
	runes := make([]rune, 0, len(bytes))
	offset := 0
	for offset < len(bytes) {
		r, width := cs.DecodeRune(bytes[offset:])
		if r == RuneError && width <= 1 {
			return runes, &MalformedError{
				Charset:    cs.Name(),
				Offset:     offset,
				Incomplete: width == 0,
			}
		}
		runes = append(runes, r)
		offset += width
	}
	return runes, nil
}

// Encode converts codepoints into bytes encoded with cs. Encoding is
// atomic: if any codepoint is unrepresentable, no bytes are returned
// and the *UnrepresentableError carries the codepoint's index.
func Encode(cs Charset, runes []rune) ([]byte, error) {
	out := make([]byte, 0, len(runes)*cs.MaxWidth())
	scratch := make([]byte, cs.MaxWidth())
	for i, r := range runes {
		width := cs.EncodeRune(scratch, r)
		if width < 0 {
			return nil, &UnrepresentableError{Charset: cs.Name(), Index: i, Rune: r}
		}
		out = append(out, scratch[:width]...)
	}
	return out, nil
}

// DecodeName and EncodeName are the registry-keyed forms of Decode and
// Encode, for callers holding a charset name rather than a Charset.
func DecodeName(name string, bytes []byte) ([]rune, error) {
	cs, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Decode(cs, bytes)
}

func EncodeName(name string, runes []rune) ([]byte, error) {
	cs, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Encode(cs, runes)
}

// Convert transforms src, encoded with srcCharset, so that it becomes
// encoded with dstCharset. The result is appended to dst if dst is not
// nil; otherwise a new byte slice is allocated. Conversion is strict:
// an invalid source sequence fails with *MalformedError and an
// unrepresentable codepoint fails with *UnrepresentableError, with no
// substitution characters emitted.
func Convert(dst []byte, dstCharset Charset, src []byte, srcCharset Charset) ([]byte, error) {
	if dstCharset.IsSuperset(srcCharset) {
		return append(dst, src...), nil
	}

	if dst == nil {
		dst = make([]byte, 0, len(src)*3)
	}

	scratch := make([]byte, dstCharset.MaxWidth())
	offset := 0
	index := 0
	for offset < len(src) {
		cp, width := srcCharset.DecodeRune(src[offset:])
		if cp == RuneError && width <= 1 {
			return dst, &MalformedError{
				Charset:    srcCharset.Name(),
				Offset:     offset,
				Incomplete: width == 0,
			}
		}
		offset += width

		w := dstCharset.EncodeRune(scratch, cp)
		if w < 0 {
			return dst, &UnrepresentableError{Charset: dstCharset.Name(), Index: index, Rune: cp}
		}
		dst = append(dst, scratch[:w]...)
		index++
	}
	return dst, nil
}
