// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynbuf implements a dynamic byte buffer: a single contiguous,
// append-only byte sink that doubles its capacity on demand. It has no
// segmenting or pooling — the encoder builds exactly one buffer per
// top-level Encode call and hands it to the caller, so there is no pool
// of short-lived buffers to amortize.
package dynbuf

// minCap is the smallest capacity a non-empty Buffer grows to.
const minCap = 64

// Buffer is a growable byte sink. The zero value is ready to use.
type Buffer struct {
	buf []byte
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Grow ensures the buffer can accept n more bytes without reallocating,
// doubling capacity (starting from minCap) until it suffices.
func (b *Buffer) Grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = minCap
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// Append copies p onto the end of the buffer, growing it first if needed.
func (b *Buffer) Append(p []byte) {
	b.Grow(len(p))
	b.buf = append(b.buf, p...)
}

// AppendByte appends a single byte, growing the buffer first if needed.
func (b *Buffer) AppendByte(c byte) {
	b.Grow(1)
	b.buf = append(b.buf, c)
}

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage and is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.buf }

// Take returns the buffer's contents and detaches them from the Buffer,
// transferring ownership to the caller. The Buffer is left empty and ready
// for reuse.
func (b *Buffer) Take() []byte {
	out := b.buf
	b.buf = nil
	return out
}

// Reset empties the buffer without releasing its backing storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }
