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

package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetTranscodeFlags() {
	fromCharset = "utf-8"
	toCharset = "utf-8"
	decompressWith = nil
	compressWith = nil
	chunkSize = 0
	outputPath = ""
}

func TestTranscodeCommand(t *testing.T) {
	defer resetTranscodeFlags()
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("héllo"), 0o644))

	resetTranscodeFlags()
	toCharset = "latin-1"
	outputPath = outPath

	require.NoError(t, commandTranscode(Transcode, []string{inPath}))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x68, 0xE9, 0x6C, 0x6C, 0x6F}, out)
}

func TestTranscodeCompressed(t *testing.T) {
	defer resetTranscodeFlags()
	dir := t.TempDir()
	plainPath := filepath.Join(dir, "plain.txt")
	packedPath := filepath.Join(dir, "packed.zst")
	unpackedPath := filepath.Join(dir, "unpacked.txt")
	require.NoError(t, os.WriteFile(plainPath, []byte("wörld ☃"), 0o644))

	resetTranscodeFlags()
	compressWith = []string{"zstd"}
	outputPath = packedPath
	require.NoError(t, commandTranscode(Transcode, []string{plainPath}))

	resetTranscodeFlags()
	decompressWith = []string{"zstd"}
	outputPath = unpackedPath
	require.NoError(t, commandTranscode(Transcode, []string{packedPath}))

	out, err := os.ReadFile(unpackedPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("wörld ☃"), out)
}

func TestTranscodeBadLayerNames(t *testing.T) {
	defer resetTranscodeFlags()
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("x"), 0o644))

	resetTranscodeFlags()
	fromCharset = "no-such-charset"
	err := commandTranscode(Transcode, []string{inPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad --from")

	resetTranscodeFlags()
	decompressWith = []string{"no-such-transform"}
	err = commandTranscode(Transcode, []string{inPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad --decompress")
}
