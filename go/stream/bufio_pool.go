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
	"bufio"
	"io"
	"sync"
)

// Writer implementation
// This writer gets *bufio.Writer from pool on Write if it has no one already and
// puts it back in pool on Flush(). Because a Stack flushes on Close (and on
// every write when Autoflush is set), every *bufio.Writer returns to the pool
// eventually.

var writersPool = sync.Pool{New: func() any { return bufio.NewWriterSize(nil, writeBufferSize) }}

type bufioWriter interface {
	Write([]byte) (int, error)
	Reset(io.Writer)
	Flush() error
}

func (pbw *poolBufioWriter) getWriter() {
	if pbw.bw != nil {
		return
	}
	pbw.bw = writersPool.Get().(*bufio.Writer)
	pbw.bw.Reset(pbw.w)
}

func (pbw *poolBufioWriter) putWriter() {
	if pbw.bw == nil {
		return
	}
	// remove reference
	pbw.bw.Reset(nil)
	writersPool.Put(pbw.bw)
	pbw.bw = nil
}

type poolBufioWriter struct {
	w  io.Writer
	bw *bufio.Writer
}

func newWriter(w io.Writer) bufioWriter {
	return &poolBufioWriter{
		w: w,
	}
}

func (pbw *poolBufioWriter) Write(b []byte) (int, error) {
	pbw.getWriter()
	return pbw.bw.Write(b)
}

func (pbw *poolBufioWriter) Reset(w io.Writer) {
	pbw.putWriter()
	pbw.w = w
}

func (pbw *poolBufioWriter) Flush() error {
	if pbw.bw == nil {
		return nil
	}
	err := pbw.bw.Flush()
	pbw.putWriter()
	return err
}
