// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/riffstream/pcm"
)

// IntReader presents a Session through the go-audio integer buffer API.
// Integer streams keep their native bit depth; float streams are delivered
// as 32-bit integers.
type IntReader struct {
	s        *Session
	bitDepth int
	format   *goaudio.Format
	scratch  []byte
}

// NewIntReader switches s to 32-bit output and wraps it. The reader owns s
// from then on; closing the reader closes the session.
func NewIntReader(s *Session) (*IntReader, error) {
	if err := s.SetOutputFormat(pcm.S32); err != nil {
		return nil, err
	}

	info := s.Info()
	depth := info.BitsPerSample
	if info.Format.IsFloat() {
		depth = 32
	}

	return &IntReader{
		s:        s,
		bitDepth: depth,
		format:   &goaudio.Format{NumChannels: info.Channels, SampleRate: info.SampleRate},
	}, nil
}

// BitDepth returns the resolution of the integers PCMBuffer produces.
func (r *IntReader) BitDepth() int { return r.bitDepth }

func (r *IntReader) Format() *goaudio.Format { return r.format }

// PCMBuffer fills buf.Data and returns the number of samples written. It
// returns 0 once the stream is exhausted.
func (r *IntReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, ErrInvalidParam
	}

	size := len(buf.Data) * 4
	if cap(r.scratch) < size {
		r.scratch = make([]byte, size)
	}
	p := r.scratch[:size]

	n, err := io.ReadFull(r.s, p)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, err
	}

	shift := 32 - r.bitDepth
	samples := n / 4
	for i := range samples {
		v := int32(binary.LittleEndian.Uint32(p[4*i:]))
		buf.Data[i] = int(v >> shift)
	}

	buf.Format = r.format
	buf.SourceBitDepth = r.bitDepth

	return samples, nil
}

// Close closes the session.
func (r *IntReader) Close() error { return r.s.Close() }
