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

// Package bucketpool implements a sync.Pool of byte slices bucketed by
// capacity in powers of two, so that variable-sized buffer requests are
// served from the smallest bucket that fits.
package bucketpool

import (
	"sync"
)

type sizedPool struct {
	size int
	pool sync.Pool
}

func newSizedPool(size int) *sizedPool {
	return &sizedPool{
		size: size,
		pool: sync.Pool{
			New: func() any { return makeSlicePointer(size) },
		},
	}
}

// Pool is a pool of buffers with capacities between a min and max size,
// rounded up to powers of two.
type Pool struct {
	minSize int
	maxSize int
	pools   []*sizedPool
}

// New creates a Pool covering buffer sizes [minSize, maxSize]. Bucket
// sizes double from minSize; the last bucket is clamped to maxSize.
// minSize must be at least 1.
func New(minSize, maxSize int) *Pool {
	if minSize < 1 {
		panic("bucketpool: minSize must be at least 1")
	}
	if maxSize < minSize {
		panic("bucketpool: maxSize can't be less than minSize")
	}
	const multiplier = 2
	var pools []*sizedPool
	curSize := minSize
	for curSize < maxSize {
		pools = append(pools, newSizedPool(curSize))
		curSize *= multiplier
	}
	pools = append(pools, newSizedPool(maxSize))
	return &Pool{
		minSize: minSize,
		maxSize: maxSize,
		pools:   pools,
	}
}

func (p *Pool) findPool(size int) *sizedPool {
	if size > p.maxSize {
		return nil
	}
	for _, sp := range p.pools {
		if sp.size >= size {
			return sp
		}
	}
	return nil
}

// Get returns a buffer of the given length. Buffers above the pool's
// max size are allocated directly and will not be recycled by Put.
func (p *Pool) Get(size int) *[]byte {
	sp := p.findPool(size)
	if sp == nil {
		return makeSlicePointer(size)
	}
	buf := sp.pool.Get().(*[]byte)
	*buf = (*buf)[:size]
	return buf
}

// Put returns a buffer obtained from Get back to its bucket. Buffers
// whose capacity does not match a bucket exactly are dropped.
func (p *Pool) Put(b *[]byte) {
	sp := p.findPool(cap(*b))
	if sp == nil || cap(*b) != sp.size {
		return
	}
	*b = (*b)[:cap(*b)]
	sp.pool.Put(b)
}

func makeSlicePointer(size int) *[]byte {
	data := make([]byte, size)
	return &data
}
