// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"log/slog"

	"github.com/ik5/riffstream/internal/iobuf"
)

// Option configures Open.
type Option func(*options)

type options struct {
	alloc  Allocator
	minBuf int
	maxBuf int
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		alloc:  HeapAllocator{},
		minBuf: iobuf.MinSize,
		maxBuf: iobuf.MaxSize,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithAllocator sets the allocator for the I/O buffer.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithBufferLimits bounds the I/O buffer size in bytes. The buffer is sized
// for a quarter second of native audio within [lo, hi].
func WithBufferLimits(lo, hi int) Option {
	return func(o *options) {
		o.minBuf = lo
		o.maxBuf = hi
	}
}

// WithLogger sets the logger for debug events. Sessions log nothing by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// maxSampleSize is the widest native sample. A smaller buffer could never
// hold a whole sample.
const maxSampleSize = 8

func (o options) validate() error {
	switch {
	case o.alloc == nil:
		return fmt.Errorf("%w: nil allocator", ErrInvalidParam)
	case o.logger == nil:
		return fmt.Errorf("%w: nil logger", ErrInvalidParam)
	case o.minBuf < maxSampleSize || o.maxBuf < o.minBuf:
		return fmt.Errorf("%w: buffer limits [%d, %d]", ErrInvalidParam, o.minBuf, o.maxBuf)
	}
	return nil
}
