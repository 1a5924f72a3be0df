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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandio/strand/go/charset"
	"github.com/strandio/strand/go/strerrors"
)

func TestDomainPreserved(t *testing.T) {
	c := NewCharacter("héllo")
	assert.True(t, c.IsCharacter())
	assert.Equal(t, Character, c.Domain())

	o := NewOctet([]byte{0x68, 0xE9})
	assert.True(t, o.IsOctet())
	assert.Equal(t, Octet, o.Domain())
}

func TestLenPerDomain(t *testing.T) {
	// "héllo" is 5 codepoints but 6 bytes in UTF-8.
	c := NewCharacter("héllo")
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 6, len(c.Bytes()))

	o := NewOctet(c.Bytes())
	assert.Equal(t, 6, o.Len())
}

func TestCrossDomainInequality(t *testing.T) {
	c := NewCharacter("Hi")
	o := NewOctet([]byte{'H', 'i'})

	// Identical byte sequences, but an undecoded octet string is not
	// the text it might spell.
	assert.Equal(t, c.Bytes(), o.Bytes())
	assert.False(t, c.Equal(o))
	assert.False(t, o.Equal(c))

	assert.True(t, c.Equal(NewCharacter("Hi")))
	assert.True(t, o.Equal(NewOctet([]byte("Hi"))))
	assert.False(t, c.Equal(NewCharacter("hi")))
}

func TestRunes(t *testing.T) {
	c := NewCharacterFromRunes([]rune{'þ', 'o', 'r', 'n'})
	assert.Equal(t, []rune{'þ', 'o', 'r', 'n'}, c.Runes())
	assert.Equal(t, "þorn", string(c.Bytes()))

	assert.Nil(t, NewOctet([]byte("þorn")).Runes())
}

func TestDecodeValue(t *testing.T) {
	latin1, err := charset.Lookup("latin-1")
	require.NoError(t, err)

	v, err := DecodeValue(latin1, NewOctet([]byte{0x68, 0xE9}))
	require.NoError(t, err)
	assert.True(t, v.Equal(NewCharacter("hé")))

	_, err = DecodeValue(latin1, NewCharacter("hé"))
	assert.Error(t, err)
}

func TestDecodeValueMalformed(t *testing.T) {
	_, err := DecodeValue(charset.Charset_utf16be{}, NewOctet([]byte{0x00, 0x68, 0x00}))
	require.Error(t, err)
	assert.Equal(t, strerrors.MalformedInput, strerrors.CodeOf(err))
}

func TestEncodeValue(t *testing.T) {
	latin1, err := charset.Lookup("latin-1")
	require.NoError(t, err)

	v, err := EncodeValue(latin1, NewCharacter("hé"))
	require.NoError(t, err)
	assert.True(t, v.Equal(NewOctet([]byte{0x68, 0xE9})))

	_, err = EncodeValue(latin1, NewOctet([]byte{0x68}))
	assert.Error(t, err)
}

func TestEncodeValueUnrepresentable(t *testing.T) {
	ascii, err := charset.Lookup("ascii")
	require.NoError(t, err)

	v, err := EncodeValue(ascii, NewCharacter("snow☃man"))
	require.Error(t, err)
	assert.Equal(t, strerrors.UnrepresentableCharacter, strerrors.CodeOf(err))
	// Failure is atomic: no partial value.
	assert.Equal(t, Value{}, v)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, `Character("hi")`, NewCharacter("hi").String())
	assert.Equal(t, "Octet(0xc3a9)", NewOctet([]byte{0xC3, 0xA9}).String())
}
