// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/riffstream/convert"
	"github.com/ik5/riffstream/internal/iobuf"
	"github.com/ik5/riffstream/pcm"
)

// Info describes an open stream.
type Info struct {
	// Format is the native sample format.
	Format        pcm.Format
	Channels      int
	SampleRate    int
	BitsPerSample int
	// Length is the stream length in samples per channel.
	Length uint64
}

// BlockSize returns the size in bytes of one native sample across all
// channels.
func (i Info) BlockSize() int { return i.Format.BytesPerSample() * i.Channels }

// Duration returns the playing time of the stream.
func (i Info) Duration() time.Duration {
	if i.SampleRate == 0 {
		return 0
	}
	return time.Duration(i.Length) * time.Second / time.Duration(i.SampleRate)
}

// output is the caller-selected sample layout and the position inside the
// block that is currently being delivered.
type output struct {
	format         pcm.Format
	bytesPerSample int
	blockSize      int
	blockOffset    int
	convert        convert.Func
}

// Session decodes one WAVE stream. Reads may use buffers of any size; a
// sample cut off at the end of one Read continues at the start of the next.
//
// A Session is not safe for concurrent use. The transport is borrowed and
// must stay valid until Close.
type Session struct {
	rs     io.ReadSeeker
	alloc  Allocator
	logger *slog.Logger

	format streamFormat
	data   region
	length uint64
	pos    uint64

	buf *iobuf.Buffer
	out output

	closed bool
}

// Open parses the container at the current position of rs and prepares the
// session for reading from sample 0 in the native format. On error no
// session is returned and any allocated buffer has been freed.
func Open(rs io.ReadSeeker, opts ...Option) (*Session, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrInvalidParam)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	hdr, err := readHeader(rs)
	if err != nil {
		return nil, err
	}

	size := iobuf.Size(hdr.format.sampleRate, hdr.format.blockSize, o.minBuf, o.maxBuf)
	data, err := o.alloc.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAlloc, size, err)
	}
	if len(data) < size {
		o.alloc.Free(data)
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrAlloc, len(data), size)
	}

	s := &Session{
		rs:     rs,
		alloc:  o.alloc,
		logger: o.logger.With("session", uuid.NewString()),
		format: hdr.format,
		data:   hdr.data,
		length: hdr.data.size / uint64(hdr.format.channels) / uint64(hdr.format.bytesPerSample),
		buf:    iobuf.New(rs, data[:size], hdr.format.bytesPerSample, hdr.data.offset, hdr.data.size),
	}

	if err := s.SetOutputFormat(hdr.format.format); err != nil {
		o.alloc.Free(data)
		return nil, err
	}

	s.logger.Debug("opened wave stream",
		"format", hdr.format.format,
		"channels", hdr.format.channels,
		"sample_rate", hdr.format.sampleRate,
		"data_offset", hdr.data.offset,
		"data_size", hdr.data.size,
		"buffer_size", size,
	)

	return s, nil
}

// OpenCallbacks opens a stream served by a callback table.
func OpenCallbacks(cb *Callbacks, opts ...Option) (*Session, error) {
	rs, err := cb.ReadSeeker()
	if err != nil {
		return nil, err
	}
	return Open(rs, opts...)
}

// Close releases the I/O buffer. The transport is left open. Calling Close
// again returns ErrClosed.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	s.alloc.Free(s.buf.Bytes())
	s.buf = nil
	s.logger.Debug("closed wave stream", "position", s.pos)

	return nil
}

// Info returns the stream description.
func (s *Session) Info() Info {
	return Info{
		Format:        s.format.format,
		Channels:      s.format.channels,
		SampleRate:    s.format.sampleRate,
		BitsPerSample: s.format.bitsPerSample,
		Length:        s.length,
	}
}

// OutputFormat returns the format Read currently produces.
func (s *Session) OutputFormat() pcm.Format { return s.out.format }

// SetOutputFormat changes the format produced by Read. Output restarts at
// the start of the current block: a partly delivered block is delivered
// again in full in the new format, and no block is skipped.
func (s *Session) SetOutputFormat(f pcm.Format) error {
	if s.closed {
		return ErrClosed
	}
	if !f.Valid() {
		return fmt.Errorf("%w: %v", ErrFormatUnsupported, f)
	}

	if err := s.SeekSample(s.pos); err != nil {
		return err
	}

	fn, err := convert.Lookup(s.format.format, f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormatUnsupported, err)
	}

	s.out = output{
		format:         f,
		bytesPerSample: f.BytesPerSample(),
		blockSize:      f.BytesPerSample() * s.format.channels,
		convert:        fn,
	}
	s.logger.Debug("output format set", "format", f, "position", s.pos)

	return nil
}

// Read fills p with samples in the output format and returns the number of
// bytes written. p need not be a multiple of the sample or block size. At
// the end of the stream Read returns 0, io.EOF. An empty p returns 0, nil
// and changes nothing.
func (s *Session) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	bps := s.out.bytesPerSample
	current := s.out.blockOffset

	// head completes a sample started by the previous call, tail starts one
	// that the next call completes.
	headOffset := current % bps
	head := 0
	if headOffset != 0 {
		head = bps - headOffset
	}

	var samples, tail, request int
	if head != 0 && len(p) <= head {
		head = len(p)
		request = 1
	} else {
		rest := len(p) - head
		samples, tail = rest/bps, rest%bps
		request = samples + btoi(head != 0) + btoi(tail != 0)
	}

	window, available, err := s.buf.Request(request)
	if err != nil {
		return 0, err
	}
	if available == 0 {
		return 0, io.EOF
	}

	if available == 1 && head != 0 {
		samples, tail = 0, 0
	} else {
		if available < request {
			tail = 0
		}
		samples = available - btoi(head != 0) - btoi(tail != 0)
	}

	s.out.convert(p, window, samples, headOffset, head, tail)
	n := convert.Bytes(s.out.format, samples, head, tail)

	current += n
	s.pos += uint64(current / s.out.blockSize)
	s.out.blockOffset = current % s.out.blockSize

	// A tail sample stays in the buffer to be converted again next time.
	release := samples
	if head != 0 && headOffset+head == bps {
		release++
	}
	if err := s.buf.Release(release); err != nil {
		return n, err
	}

	return n, nil
}

// SeekSample moves to sample n of each channel, clamped to the stream
// length. Output restarts at a block boundary.
func (s *Session) SeekSample(n uint64) error {
	if s.closed {
		return ErrClosed
	}

	n = min(n, s.length)

	offset := s.data.offset + n*uint64(s.format.blockSize)
	if _, err := s.rs.Seek(int64(offset), io.SeekStart); err != nil {
		return fmt.Errorf("seeking to sample %d: %w", n, err)
	}

	s.pos = n
	s.out.blockOffset = 0

	if err := s.buf.Clear(); err != nil {
		return err
	}
	s.logger.Debug("seek", "position", n, "offset", offset)

	return nil
}

// Tell returns the index of the block that the next Read continues.
func (s *Session) Tell() uint64 { return s.pos }

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
