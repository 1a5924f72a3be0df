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

// Package stream implements the IO layer stack: an ordered list of
// named transcoding and transform layers bound to a byte channel.
// Reads pull raw chunks from the channel and push them up through the
// layers to produce string values; writes run the same layers in the
// reverse direction.
//
// A Stack is synchronous and confined to a single owner. There is no
// internal locking; callers needing concurrent IO confine each
// channel/stack pair to one goroutine.
package stream

import (
	"errors"
	"io"

	"github.com/strandio/strand/go/bucketpool"
	"github.com/strandio/strand/go/charset"
	"github.com/strandio/strand/go/strerrors"
	"github.com/strandio/strand/go/strval"
)

const (
	defaultChunkSize = 4096
	writeBufferSize  = 16384
)

// chunkPool recycles the scratch buffers chunks are pulled into. Chunk
// sizes vary per stack config, hence buckets rather than one pool.
var chunkPool = bucketpool.New(512, 64*1024)

// Direction selects which side of the stack a layer participates in.
type Direction int8

const (
	// DirRead layers decode on the read path only.
	DirRead Direction = 1 << iota
	// DirWrite layers encode on the write path only.
	DirWrite
)

// DirReadWrite layers apply to both paths.
const DirReadWrite = DirRead | DirWrite

// Config carries the per-stack knobs. These replace what the modeled
// system kept in ambient per-channel variables: every behavior toggle
// is an explicit field here, set at construction or via setters.
type Config struct {
	// ChunkSize bounds how many bytes a single channel pull requests.
	// Zero means the default.
	ChunkSize int
	// Autoflush flushes the write path after every WriteValue.
	Autoflush bool
	// LineEnding is what WriteLine appends. Empty means "\n".
	LineEnding string
}

type layer struct {
	name string
	dir  Direction
	cs   charset.Charset
	tr   transform
}

// Stack is an IO layer stack bound to exactly one Channel. The zero
// value is not usable; construct with Open.
type Stack struct {
	channel Channel
	config  Config

	layers []layer

	// Read state. pending holds bytes that came up through the
	// transform layers but have not yet decoded to a complete
	// codepoint under the topmost transcode layer (a multi-byte
	// sequence straddling a chunk boundary sits here until its tail
	// arrives). readBuilt counts the layers already incorporated into
	// readChain; layers pushed after that index wrap the existing
	// chain so in-progress transform state survives a re-bind.
	chanReader *channelReader
	readChain  io.Reader
	readBuilt  int
	readDirty  bool
	pending    []byte

	// Write state. base is the pooled buffered writer over the
	// channel; writeTrs are the live transform writers, innermost
	// first; writeTop is where encoded bytes enter. writeBuilt mirrors
	// readBuilt for the write chain.
	base       bufioWriter
	writeTrs   []transformWriter
	writeTop   io.Writer
	writeBuilt int
	writeDirty bool

	closed bool
}

var errClosed = errors.New("stream: stack is closed")

// Open binds a new Stack to ch. The channel is borrowed: Close releases
// it by calling its Close and nothing more.
func Open(ch Channel, config Config) *Stack {
	if config.ChunkSize <= 0 {
		config.ChunkSize = defaultChunkSize
	}
	return &Stack{channel: ch, config: config}
}

// OpenReader is shorthand for Open over a reader-backed channel.
func OpenReader(r io.Reader, config Config) *Stack {
	chunk := config.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	return Open(NewReaderChannel(r, chunk), config)
}

// OpenWriter is shorthand for Open over a writer-backed channel.
func OpenWriter(w io.Writer, config Config) *Stack {
	return Open(NewWriterChannel(w), config)
}

// SetAutoflush toggles flushing after every write.
func (s *Stack) SetAutoflush(autoflush bool) {
	s.config.Autoflush = autoflush
}

// SetLineEnding changes what WriteLine appends.
func (s *Stack) SetLineEnding(ending string) {
	s.config.LineEnding = ending
}

// PushLayer appends a named layer to the stack. The name is either a
// transform ("zstd", "gzip", "lz4") or a registered charset name, in
// which case the layer transcodes: decode on the read path, encode on
// the write path. A pushed layer affects only subsequent reads and
// writes; bytes already buffered keep the interpretation they were
// read or written under.
func (s *Stack) PushLayer(name string, dir Direction) error {
	if s.closed {
		return errClosed
	}
	if tr, ok := lookupTransform(name); ok {
		s.layers = append(s.layers, layer{name: name, dir: dir, tr: tr})
	} else {
		cs, err := charset.Lookup(name)
		if err != nil {
			return err
		}
		s.layers = append(s.layers, layer{name: name, dir: dir, cs: cs})
	}
	if dir&DirRead != 0 {
		s.readDirty = true
	}
	if dir&DirWrite != 0 {
		s.writeDirty = true
	}
	return nil
}

// Layers returns the names of the pushed layers in stack order.
func (s *Stack) Layers() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.name
	}
	return names
}

// readCharset returns the topmost transcode layer on the read path, or
// nil when reads pass bytes through untransformed.
func (s *Stack) readCharset() charset.Charset {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].cs != nil && s.layers[i].dir&DirRead != 0 {
			return s.layers[i].cs
		}
	}
	return nil
}

func (s *Stack) writeCharset() charset.Charset {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].cs != nil && s.layers[i].dir&DirWrite != 0 {
			return s.layers[i].cs
		}
	}
	return nil
}

// buildReadChain extends the read chain with any layers pushed since
// the last build. A pushed layer is always outermost (PushLayer is
// append-only), so it wraps the existing chain in place; transform
// readers already in the chain are never torn down or recreated, which
// keeps their buffered, half-decoded state intact across a re-bind.
func (s *Stack) buildReadChain() error {
	if s.chanReader == nil {
		s.chanReader = &channelReader{ch: s.channel}
		s.readChain = s.chanReader
	}
	for ; s.readBuilt < len(s.layers); s.readBuilt++ {
		l := s.layers[s.readBuilt]
		if l.tr == nil || l.dir&DirRead == 0 {
			continue
		}
		wrapped, err := l.tr.reader(s.readChain)
		if err != nil {
			return err
		}
		s.readChain = wrapped
	}
	s.readDirty = false
	return nil
}

// pullChunk reads one chunk through the transform chain into pending.
// Returns io.EOF when the chain is exhausted.
func (s *Stack) pullChunk() error {
	buf := chunkPool.Get(s.config.ChunkSize)
	n, err := s.readChain.Read(*buf)
	if n > 0 {
		s.pending = append(s.pending, (*buf)[:n]...)
	}
	chunkPool.Put(buf)
	if n > 0 {
		// A chunk arrived; a simultaneous error resurfaces on the
		// next pull.
		return nil
	}
	if err == nil {
		err = io.EOF
	}
	return err
}

// decodeAvailable decodes complete codepoints from buf, stopping at an
// incomplete trailing sequence. Invalid bytes fail with the offset into
// buf.
func decodeAvailable(cs charset.Charset, buf []byte) ([]rune, int, error) {
	var runes []rune
	consumed := 0
	for consumed < len(buf) {
		r, width := cs.DecodeRune(buf[consumed:])
		if r == charset.RuneError && width <= 1 {
			if width == 0 {
				// Incomplete tail: wait for more bytes.
				return runes, consumed, nil
			}
			return runes, consumed, &charset.MalformedError{
				Charset: cs.Name(),
				Offset:  consumed,
			}
		}
		runes = append(runes, r)
		consumed += width
	}
	return runes, consumed, nil
}

// ReadValue reads the next string value from the channel. With a
// transcode layer bound it returns a Character value holding every
// complete codepoint currently available, leaving a trailing partial
// sequence in the pending buffer for the next call; without one, bytes
// pass through untransformed as an Octet value. Returns io.EOF on a
// cleanly exhausted channel and a TruncatedStream error when the
// channel ends in the middle of a multi-byte sequence.
func (s *Stack) ReadValue() (strval.Value, error) {
	if s.closed {
		return strval.Value{}, errClosed
	}
	if s.readChain == nil || s.readDirty {
		if err := s.buildReadChain(); err != nil {
			if err == io.EOF {
				return strval.Value{}, io.EOF
			}
			return strval.Value{}, strerrors.WithCode(err, strerrors.IO)
		}
	}

	cs := s.readCharset()
	if cs == nil {
		return s.readOctets()
	}

	for {
		if len(s.pending) > 0 {
			runes, consumed, err := decodeAvailable(cs, s.pending)
			if len(runes) > 0 {
				// Keep the undecoded tail (incomplete or invalid);
				// an invalid tail fails the next call with its
				// offset rebased to 0.
				s.pending = append(s.pending[:0], s.pending[consumed:]...)
				return strval.NewCharacterFromRunes(runes), nil
			}
			if err != nil {
				return strval.Value{}, err
			}
		}

		switch err := s.pullChunk(); {
		case err == nil:
		case err == io.EOF:
			if len(s.pending) == 0 {
				return strval.Value{}, io.EOF
			}
			if _, _, derr := decodeAvailable(cs, s.pending); derr != nil {
				return strval.Value{}, derr
			}
			return strval.Value{}, strerrors.Errorf(strerrors.TruncatedStream,
				"stream ended inside a %s sequence (%d bytes pending)", cs.Name(), len(s.pending))
		default:
			return strval.Value{}, strerrors.WithCode(err, strerrors.IO)
		}
	}
}

func (s *Stack) readOctets() (strval.Value, error) {
	if len(s.pending) == 0 {
		switch err := s.pullChunk(); {
		case err == nil:
		case err == io.EOF:
			return strval.Value{}, io.EOF
		default:
			return strval.Value{}, strerrors.WithCode(err, strerrors.IO)
		}
	}
	v := strval.NewOctet(s.pending)
	s.pending = s.pending[:0]
	return v, nil
}

// buildWriteChain extends the write chain with any layers pushed since
// the last build, mirroring buildReadChain: a new transform wraps the
// current top and feeds the still-open stream below it, so a re-bind
// never finalizes an in-progress frame mid-stream.
func (s *Stack) buildWriteChain() error {
	if s.base == nil {
		s.base = newWriter(&channelWriter{ch: s.channel})
		s.writeTop = s.base
	}
	for ; s.writeBuilt < len(s.layers); s.writeBuilt++ {
		l := s.layers[s.writeBuilt]
		if l.tr == nil || l.dir&DirWrite == 0 {
			continue
		}
		tw, err := l.tr.writer(s.writeTop)
		if err != nil {
			return err
		}
		s.writeTrs = append(s.writeTrs, tw)
		s.writeTop = tw
	}
	s.writeDirty = false
	return nil
}

func (s *Stack) finishTransformWriters() error {
	var firstErr error
	for i := len(s.writeTrs) - 1; i >= 0; i-- {
		if err := s.writeTrs[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.writeTrs = nil
	return firstErr
}

// WriteValue writes v to the channel. A Character value is encoded by
// the topmost write-direction transcode layer (or as UTF-8 when none
// is bound); an Octet value's bytes pass through unencoded. Encoding
// is atomic per call: an unrepresentable codepoint fails before any
// byte reaches the write path.
func (s *Stack) WriteValue(v strval.Value) error {
	if s.closed {
		return errClosed
	}
	if s.writeTop == nil || s.writeDirty {
		if err := s.buildWriteChain(); err != nil {
			return strerrors.WithCode(err, strerrors.IO)
		}
	}

	payload := v.Bytes()
	if v.IsCharacter() {
		if cs := s.writeCharset(); cs != nil {
			encoded, err := charset.Convert(nil, cs, payload, charset.Charset_utf8{})
			if err != nil {
				return err
			}
			payload = encoded
		}
	}

	if _, err := s.writeTop.Write(payload); err != nil {
		return strerrors.WithCode(err, strerrors.IO)
	}
	if s.config.Autoflush {
		return s.Flush()
	}
	return nil
}

// WriteLine writes v followed by the configured line ending.
func (s *Stack) WriteLine(v strval.Value) error {
	if err := s.WriteValue(v); err != nil {
		return err
	}
	ending := s.config.LineEnding
	if ending == "" {
		ending = "\n"
	}
	return s.WriteValue(strval.NewCharacter(ending))
}

// Flush forces all buffered bytes down to the channel: transform
// writers first (outermost to innermost), then the base buffer.
func (s *Stack) Flush() error {
	if s.closed {
		return errClosed
	}
	var firstErr error
	for i := len(s.writeTrs) - 1; i >= 0; i-- {
		if err := s.writeTrs[i].Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.base != nil {
		if err := s.base.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return strerrors.WithCode(firstErr, strerrors.IO)
	}
	return nil
}

// Close flushes buffered writes, discards the pending read buffer and
// releases the channel. The channel is released even when the flush
// fails; the flush error is surfaced in that case, taking precedence
// over the channel's own close error.
func (s *Stack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.finishTransformWriters()
	if s.base != nil {
		if err := s.base.Flush(); err != nil && flushErr == nil {
			flushErr = err
		}
	}
	closeErr := s.channel.Close()
	s.pending = nil

	if flushErr != nil {
		return strerrors.WithCode(flushErr, strerrors.IO)
	}
	return closeErr
}
