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
)

func TestCoerceToCharacter(t *testing.T) {
	// ASCII octets become the same bytes, character-tagged.
	v := CoerceToCharacter(NewOctet([]byte("plain")))
	assert.True(t, v.Equal(NewCharacter("plain")))

	// High bytes decode as latin-1.
	v = CoerceToCharacter(NewOctet([]byte{0x68, 0xE9}))
	assert.True(t, v.Equal(NewCharacter("hé")))

	// Character values pass through untouched.
	c := NewCharacter("héllo")
	assert.True(t, CoerceToCharacter(c).Equal(c))
}

func TestCoerceHazard(t *testing.T) {
	// The bytes 0xC3 0xA9 are UTF-8 "é", but implicit coercion does not
	// know that: latin-1 maps them to the two characters "Ã©". Silently
	// wrong, by the policy's own rules.
	v := CoerceToCharacter(NewOctet([]byte{0xC3, 0xA9}))
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []rune{'Ã', '©'}, v.Runes())
}

func TestConcatSameDomain(t *testing.T) {
	c := Concat(NewCharacter("hé"), NewCharacter("llo"))
	assert.True(t, c.Equal(NewCharacter("héllo")))

	o := Concat(NewOctet([]byte{0xC3}), NewOctet([]byte{0xA9}))
	assert.True(t, o.Equal(NewOctet([]byte{0xC3, 0xA9})))
}

func TestConcatMixedDomain(t *testing.T) {
	// Mixed-domain concatenation never fails: the octet side coerces
	// through latin-1 and the result is a Character value.
	v := Concat(NewOctet([]byte{0xC3, 0xA9}), NewCharacter("x"))
	assert.True(t, v.IsCharacter())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, "Ã©x", string(v.Bytes()))

	v = Concat(NewCharacter("x"), NewOctet([]byte{0xFF}))
	assert.True(t, v.Equal(NewCharacter("xÿ")))
}

func TestCompare(t *testing.T) {
	testcases := []struct {
		a, b Value
		want int
	}{
		{NewCharacter("abc"), NewCharacter("abc"), 0},
		{NewCharacter("abc"), NewCharacter("abd"), -1},
		{NewOctet([]byte{0x01}), NewOctet([]byte{0x02}), -1},
		{NewOctet([]byte{0xFF}), NewOctet([]byte{0x00}), 1},
		// Coercing comparison: the octet side decodes as latin-1 first.
		{NewCharacter("hé"), NewOctet([]byte{0x68, 0xE9}), 0},
		{NewCharacter("hi"), NewOctet([]byte("hi")), 0},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.want, Compare(tc.a, tc.b), "Compare(%v, %v)", tc.a, tc.b)
		assert.Equal(t, -tc.want, Compare(tc.b, tc.a), "Compare(%v, %v)", tc.b, tc.a)
	}
}

func TestCompareVersusEqual(t *testing.T) {
	// Ordering coerces, equality does not: a pair can compare as 0 and
	// still be unequal.
	c := NewCharacter("hi")
	o := NewOctet([]byte("hi"))
	assert.Equal(t, 0, Compare(c, o))
	assert.False(t, c.Equal(o))
}
