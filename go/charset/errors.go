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
	"fmt"

	"github.com/strandio/strand/go/strerrors"
)

// MalformedError reports a byte sequence Decode could not interpret.
// Offset is the position of the first bad byte in the input. Incomplete
// distinguishes a truncated trailing sequence, which more bytes could
// still complete, from bytes that are invalid outright; streaming
// callers retry the former and abort on the latter.
type MalformedError struct {
	Charset    string
	Offset     int
	Incomplete bool
}

func (e *MalformedError) Error() string {
	if e.Incomplete {
		return fmt.Sprintf("incomplete %s sequence at byte offset %d", e.Charset, e.Offset)
	}
	return fmt.Sprintf("invalid %s sequence at byte offset %d", e.Charset, e.Offset)
}

func (e *MalformedError) ErrorCode() strerrors.Code {
	return strerrors.MalformedInput
}

// UnrepresentableError reports a codepoint the target charset cannot
// encode. Index is the position of the codepoint in the input rune
// sequence.
type UnrepresentableError struct {
	Charset string
	Index   int
	Rune    rune
}

func (e *UnrepresentableError) Error() string {
	return fmt.Sprintf("cannot encode %q (U+%04X) at index %d in charset %s",
		e.Rune, e.Rune, e.Index, e.Charset)
}

func (e *UnrepresentableError) ErrorCode() strerrors.Code {
	return strerrors.UnrepresentableCharacter
}
