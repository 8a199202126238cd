// SPDX-License-Identifier: EPL-2.0

// Package iobuf implements the bounded payload cache that sits between a
// wave stream's transport and its sample converter. It pulls from the
// transport in large reads, independent of how many bytes each decode call
// asks for.
package iobuf

import (
	"errors"
	"fmt"
	"io"
)

const (
	// MinSize and MaxSize are the default bounds for Size.
	MinSize = 4096
	MaxSize = 2 << 20
)

// Size returns a buffer capacity holding a quarter second of audio at the
// given sample rate and block size, clamped to [lo, hi].
func Size(sampleRate, blockSize, lo, hi int) int {
	size := sampleRate * blockSize / 4
	if size < lo {
		size = lo
	} else if size > hi {
		size = hi
	}
	return size
}

// Buffer caches bytes of one payload region of a transport.
//
// data[offset:end] is the valid, unconsumed window. remaining counts the
// payload bytes that have not been pulled from the transport yet.
type Buffer struct {
	rs   io.ReadSeeker
	data []byte

	offset int
	end    int

	remaining  uint64
	sampleSize int

	regionOffset uint64
	regionSize   uint64
}

// New wraps data as the cache for the payload region [offset, offset+size)
// of rs. sampleSize is the width of one native sample in bytes. The buffer
// is empty until Clear establishes the transport position.
func New(rs io.ReadSeeker, data []byte, sampleSize int, offset, size uint64) *Buffer {
	return &Buffer{
		rs:           rs,
		data:         data,
		sampleSize:   sampleSize,
		regionOffset: offset,
		regionSize:   size,
	}
}

// Bytes returns the backing storage, for releasing it to an allocator.
func (b *Buffer) Bytes() []byte { return b.data }

// Cap returns the buffer capacity in bytes.
func (b *Buffer) Cap() int { return len(b.data) }

// Buffered returns the number of unconsumed bytes in the buffer.
func (b *Buffer) Buffered() int { return b.end - b.offset }

// Remaining returns the number of payload bytes not yet read from the
// transport.
func (b *Buffer) Remaining() uint64 { return b.remaining }

// Fill moves the unconsumed bytes to the front of the buffer and tops it up
// from the transport, reading until the buffer is full or the payload ends.
// A transport that returns short counts is read again. A full buffer is
// left alone.
func (b *Buffer) Fill() error {
	buffered := b.end - b.offset
	if buffered == len(b.data) {
		return nil
	}
	if buffered > 0 {
		copy(b.data, b.data[b.offset:b.end])
	}
	b.offset = 0
	b.end = buffered

	want := len(b.data) - buffered
	if uint64(want) > b.remaining {
		want = int(b.remaining)
	}
	if want == 0 {
		return nil
	}

	n, err := io.ReadFull(b.rs, b.data[buffered:buffered+want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("reading payload: %w", err)
	}

	b.end += n
	b.remaining -= uint64(n)

	return nil
}

// Request makes at least n samples available if the payload allows it. It
// returns the unconsumed window and the number of whole samples in it, capped
// at n. Fewer samples than requested is not an error; it means the end of the
// payload is near.
func (b *Buffer) Request(n int) ([]byte, int, error) {
	if n*b.sampleSize > b.end-b.offset {
		if err := b.Fill(); err != nil {
			return nil, 0, err
		}
	}

	available := (b.end - b.offset) / b.sampleSize
	if available < n {
		n = available
	}

	return b.data[b.offset:b.end], n, nil
}

// Release marks n samples at the front of the window as consumed.
func (b *Buffer) Release(n int) error {
	size := n * b.sampleSize
	if n < 0 || size > b.end-b.offset {
		return fmt.Errorf("%w: %d bytes, %d buffered", ErrInvalidSize, size, b.end-b.offset)
	}
	b.offset += size
	return nil
}

// Clear drops the buffered bytes and resynchronises with the transport
// position, which must lie inside the payload region.
func (b *Buffer) Clear() error {
	pos, err := b.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("querying stream position: %w", err)
	}

	if pos < 0 || uint64(pos) < b.regionOffset || uint64(pos) > b.regionOffset+b.regionSize {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidStreamPosition,
			pos, b.regionOffset, b.regionOffset+b.regionSize)
	}

	b.remaining = b.regionSize - (uint64(pos) - b.regionOffset)
	b.offset = 0
	b.end = 0

	return nil
}
