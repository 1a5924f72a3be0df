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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandio/strand/go/strerrors"
)

func TestLookupAliases(t *testing.T) {
	testCases := []struct {
		lookup string
		want   string
	}{
		{"utf-8", "utf-8"},
		{"UTF-8", "utf-8"},
		{"utf8", "utf-8"},
		{"utf_8", "utf-8"},
		{"utf8mb4", "utf-8"},
		{"latin1", "latin-1"},
		{"ISO-8859-1", "latin-1"},
		{"l1", "latin-1"},
		{"us-ascii", "ascii"},
		{"binary", "binary"},
		{"UTF-16BE", "utf-16be"},
		{"cp1252", "windows-1252"},
		{"latin2", "iso-8859-2"},
		{"koi8-r", "koi8-r"},
	}

	for _, tc := range testCases {
		cs, err := Lookup(tc.lookup)
		require.NoError(t, err, "Lookup(%q)", tc.lookup)
		assert.Equal(t, tc.want, cs.Name(), "Lookup(%q)", tc.lookup)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("ebcdic-37")
	require.Error(t, err)
	assert.Equal(t, strerrors.UnknownCodec, strerrors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	in := "testString"
	ok := Validate(Charset_binary{}, []byte(in))
	assert.True(t, ok, "%q should be valid for binary charset", in)

	ok = Validate(Charset_latin1{}, nil)
	assert.True(t, ok, "Validate should return true for empty input irrespective of charset")

	ok = Validate(Charset_utf8{}, []byte(in))
	assert.True(t, ok, "%q should be valid for utf-8", in)

	ok = Validate(Charset_utf8{}, []byte{0x80})
	assert.False(t, ok, "a lone continuation byte should not be valid utf-8")

	ok = Validate(Charset_utf16be{}, []byte{0x41})
	assert.False(t, ok, "%v should not be valid for utf-16be", []byte{0x41})

	ok = Validate(Charset_ascii{}, []byte{0x41, 0xFE})
	assert.False(t, ok, "bytes above 0x7F should not be valid ascii")
}

func TestLength(t *testing.T) {
	testCases := []struct {
		in   []byte
		cs   Charset
		want int
	}{
		{[]byte("testString"), Charset_binary{}, 10},
		{[]byte("testString"), Charset_latin1{}, 10},
		{[]byte("😊😂🤢"), Charset_utf8{}, 3},
		{[]byte("한국어 시험"), Charset_utf8{}, 6},
		{[]byte{0x00, 0x68, 0x00, 0x69}, Charset_utf16be{}, 2},
	}

	for _, tc := range testCases {
		l := Length(tc.cs, tc.in)
		assert.Equal(t, tc.want, l)
	}
}

func TestSlice(t *testing.T) {
	testCases := []struct {
		in   []byte
		cs   Charset
		from int
		to   int
		want []byte
	}{
		{
			in:   []byte("testString"),
			cs:   Charset_binary{},
			from: 1,
			to:   4,
			want: []byte("est"),
		},
		{
			in:   []byte("testString"),
			cs:   Charset_latin1{},
			from: 2,
			to:   20,
			want: []byte("stString"),
		},
		// Multibyte cases
		{
			in:   []byte("😊😂🤢"),
			cs:   Charset_utf8{},
			from: 1,
			to:   3,
			want: []byte("😂🤢"),
		},
		{
			in:   []byte("😊😂🤢"),
			cs:   Charset_utf8{},
			from: -2,
			to:   4,
			want: []byte("😊😂🤢"),
		},
	}

	for _, tc := range testCases {
		s := Slice(tc.cs, tc.in, tc.from, tc.to)
		assert.Equal(t, tc.want, s)
	}
}

func TestFrozenRegistryPanics(t *testing.T) {
	// Freeze is sticky for the remainder of the process, so this test
	// must run after every registration in the package is done. All
	// built-in registration happens in init.
	Freeze()
	assert.Panics(t, func() {
		Register(Charset_binary{}, "frozen-alias")
	})
}
