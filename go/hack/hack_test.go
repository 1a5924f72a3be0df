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

package hack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteToString(t *testing.T) {
	v1 := []byte("1234")
	s := String(v1)
	assert.Equal(t, "1234", s)

	v1 = []byte("")
	s = String(v1)
	assert.Equal(t, "", s)

	v1 = nil
	s = String(v1)
	assert.Equal(t, "", s)
}

func TestStringToByte(t *testing.T) {
	s := "1234"
	b := StringBytes(s)
	assert.Equal(t, []byte("1234"), b)

	s = ""
	b = StringBytes(s)
	assert.Nil(t, b)
}

func TestStringClone(t *testing.T) {
	b := []byte("shared")
	s := String(b)
	c := StringClone(s)
	b[0] = 'x'
	assert.Equal(t, "shared", c)
}
