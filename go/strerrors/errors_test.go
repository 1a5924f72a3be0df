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

package strerrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNil(t *testing.T) {
	got := Wrap(nil, "no error")
	if got != nil {
		t.Errorf("Wrap(nil, \"no error\"): got %#v, expected nil", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		err         error
		message     string
		wantMessage string
		wantCode    Code
	}{
		{io.EOF, "read error", "read error: EOF", Unknown},
		{New(UnknownCodec, "oops"), "client error", "client error: oops", UnknownCodec},
		{Errorf(TruncatedStream, "mid-sequence after %d bytes", 3), "reader", "reader: mid-sequence after 3 bytes", TruncatedStream},
	}

	for _, tt := range tests {
		got := Wrap(tt.err, tt.message)
		assert.Equal(t, tt.wantMessage, got.Error())
		assert.Equal(t, tt.wantCode, CodeOf(got))
	}
}

func TestRootCause(t *testing.T) {
	x := New(MalformedInput, "error")
	tests := []struct {
		err  error
		want error
	}{{
		// uncaused error is unaffected
		err:  io.EOF,
		want: io.EOF,
	}, {
		// caused error returns cause
		err:  Wrap(io.EOF, "ignored"),
		want: io.EOF,
	}, {
		err:  x,
		want: x,
	}, {
		err:  Wrapf(Wrap(x, "inner"), "outer %d", 1),
		want: x,
	}}

	for i, tt := range tests {
		got := RootCause(tt.err)
		assert.Equalf(t, tt.want, got, "test %d", i+1)
	}
}

func TestWithCode(t *testing.T) {
	cause := errors.New("disk on fire")
	coded := WithCode(cause, IO)

	// The message must pass through unmodified.
	assert.Equal(t, cause.Error(), coded.Error())
	assert.Equal(t, IO, CodeOf(coded))
	assert.True(t, errors.Is(coded, cause))

	assert.Nil(t, WithCode(nil, IO))
}

func TestCodeOfChain(t *testing.T) {
	inner := New(UnrepresentableCharacter, "no mapping")
	outer := Wrap(Wrap(inner, "encode"), "write")
	assert.Equal(t, UnrepresentableCharacter, CodeOf(outer))

	require.ErrorIs(t, outer, inner)
	assert.Equal(t, Unknown, CodeOf(nil))
	assert.Equal(t, Unknown, CodeOf(io.ErrShortWrite))
}

func TestErrorfWrapping(t *testing.T) {
	cause := errors.New("root")
	err := Errorf(IO, "channel: %w", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, IO, CodeOf(err))
	assert.Equal(t, "channel: root", err.Error())
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Unknown, "UNKNOWN"},
		{UnknownCodec, "UNKNOWN_CODEC"},
		{MalformedInput, "MALFORMED_INPUT"},
		{UnrepresentableCharacter, "UNREPRESENTABLE_CHARACTER"},
		{TruncatedStream, "TRUNCATED_STREAM"},
		{IO, "IO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}
