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

package stream

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// A transform is a byte-to-byte layer: decompression on the read side,
// compression on the write side. Transforms sit below the topmost
// transcode layer in a stack.
type transform interface {
	name() string
	reader(r io.Reader) (io.Reader, error)
	writer(w io.Writer) (transformWriter, error)
}

// transformWriter is the write side of a transform. Flush makes all
// data written so far decodable by the read side without ending the
// stream; Close finalizes the stream framing.
type transformWriter interface {
	io.Writer
	Flush() error
	Close() error
}

var transforms = map[string]transform{
	"zstd": zstdTransform{},
	"gzip": gzipTransform{},
	"lz4":  lz4Transform{},
}

// lookupTransform resolves a transform layer name. The transform
// namespace is fixed: these are framing formats, not charsets, so they
// do not live in the charset registry.
func lookupTransform(name string) (transform, bool) {
	t, ok := transforms[name]
	return t, ok
}

type zstdTransform struct{}

func (zstdTransform) name() string { return "zstd" }

func (zstdTransform) reader(r io.Reader) (io.Reader, error) {
	// Single-threaded: the stack is confined to one owner and the
	// decoder goroutines would outlive Close otherwise.
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

func (zstdTransform) writer(w io.Writer) (transformWriter, error) {
	return zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
}

type gzipTransform struct{}

func (gzipTransform) name() string { return "gzip" }

func (gzipTransform) reader(r io.Reader) (io.Reader, error) {
	return gzip.NewReader(r)
}

func (gzipTransform) writer(w io.Writer) (transformWriter, error) {
	return gzip.NewWriter(w), nil
}

type lz4Transform struct{}

func (lz4Transform) name() string { return "lz4" }

func (lz4Transform) reader(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}

func (lz4Transform) writer(w io.Writer) (transformWriter, error) {
	return lz4.NewWriter(w), nil
}
