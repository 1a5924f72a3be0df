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
	"bytes"
	"io"
)

// Channel is the raw byte source/sink a Stack is bound to. It is the
// only thing the stack requires of the outside world: chunked reads,
// chunked writes, and a close. Chunks may be arbitrarily small,
// including a single byte; the stack's pending buffer absorbs sequences
// that straddle chunk boundaries.
//
// A Channel is borrowed by the Stack, not owned: Stack.Close calls
// Close here and nothing else.
type Channel interface {
	// ReadChunk returns the next chunk of bytes, or io.EOF once the
	// channel is exhausted. A non-empty chunk together with io.EOF is
	// not allowed; the final chunk returns a nil error.
	ReadChunk() ([]byte, error)

	// WriteChunk forwards bytes to the underlying sink.
	WriteChunk(p []byte) error

	Close() error
}

type readerChannel struct {
	r         io.Reader
	chunkSize int
	buf       []byte
}

// NewReaderChannel adapts an io.Reader into a read-only Channel
// producing chunks of at most chunkSize bytes.
func NewReaderChannel(r io.Reader, chunkSize int) Channel {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &readerChannel{r: r, chunkSize: chunkSize, buf: make([]byte, chunkSize)}
}

func (c *readerChannel) ReadChunk() ([]byte, error) {
	for {
		n, err := c.r.Read(c.buf)
		if n > 0 {
			return c.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (c *readerChannel) WriteChunk(p []byte) error {
	return io.ErrClosedPipe
}

func (c *readerChannel) Close() error {
	if closer, ok := c.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type writerChannel struct {
	w io.Writer
}

// NewWriterChannel adapts an io.Writer into a write-only Channel.
func NewWriterChannel(w io.Writer) Channel {
	return &writerChannel{w: w}
}

func (c *writerChannel) ReadChunk() ([]byte, error) {
	return nil, io.EOF
}

func (c *writerChannel) WriteChunk(p []byte) error {
	_, err := c.w.Write(p)
	return err
}

func (c *writerChannel) Close() error {
	if closer, ok := c.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// BufferChannel is an in-memory Channel. Reads consume the initial
// contents; writes accumulate in a separate buffer readable via
// Written. Used by tests and as scratch plumbing.
type BufferChannel struct {
	readBuf   bytes.Reader
	writeBuf  bytes.Buffer
	chunkSize int
	closed    bool
}

// NewBufferChannel returns a BufferChannel whose reads drain contents
// in chunks of at most chunkSize bytes.
func NewBufferChannel(contents []byte, chunkSize int) *BufferChannel {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	bc := &BufferChannel{chunkSize: chunkSize}
	bc.readBuf.Reset(contents)
	return bc
}

func (bc *BufferChannel) ReadChunk() ([]byte, error) {
	chunk := make([]byte, bc.chunkSize)
	n, err := bc.readBuf.Read(chunk)
	if n > 0 {
		return chunk[:n], nil
	}
	return nil, err
}

func (bc *BufferChannel) WriteChunk(p []byte) error {
	if bc.closed {
		return io.ErrClosedPipe
	}
	_, err := bc.writeBuf.Write(p)
	return err
}

func (bc *BufferChannel) Close() error {
	bc.closed = true
	return nil
}

// Written returns everything written to the channel so far.
func (bc *BufferChannel) Written() []byte {
	return bc.writeBuf.Bytes()
}

// channelReader adapts a Channel back into an io.Reader so transform
// layers (which all speak io.Reader) can wrap it. The leftover slice
// holds the tail of a chunk a short Read did not consume.
type channelReader struct {
	ch       Channel
	leftover []byte
}

func (cr *channelReader) Read(p []byte) (int, error) {
	if len(cr.leftover) == 0 {
		chunk, err := cr.ch.ReadChunk()
		if err != nil {
			return 0, err
		}
		cr.leftover = chunk
	}
	n := copy(p, cr.leftover)
	cr.leftover = cr.leftover[n:]
	return n, nil
}

// channelWriter adapts a Channel into an io.Writer.
type channelWriter struct {
	ch Channel
}

func (cw *channelWriter) Write(p []byte) (int, error) {
	if err := cw.ch.WriteChunk(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
