// SPDX-License-Identifier: EPL-2.0

package riffstream

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/riffstream/audio"
	"github.com/ik5/riffstream/formats/aiff"
	"github.com/ik5/riffstream/formats/wav"
	"github.com/ik5/riffstream/pcm"
)

// maxPrealloc bounds the capacity DecodeAll reserves from the header alone.
const maxPrealloc = 64 << 20

// DecodeAll is a convenience function that decodes a whole WAVE stream into
// memory.
//
// It opens a session on rs, switches it to the out format and reads until
// the end of the payload. The session is closed before returning; rs is not.
//
// Returns:
//   - []byte: interleaved samples in the out format, little-endian
//   - wav.Info: the description of the stream as stored
//   - error: any error from opening or reading the stream
//
// For large files prefer wav.Open and read the session in pieces.
func DecodeAll(rs io.ReadSeeker, out pcm.Format, opts ...wav.Option) ([]byte, wav.Info, error) {
	s, err := wav.Open(rs, opts...)
	if err != nil {
		return nil, wav.Info{}, err
	}
	defer s.Close()

	info := s.Info()
	if err := s.SetOutputFormat(out); err != nil {
		return nil, info, err
	}

	size := info.Length * uint64(info.Channels) * uint64(out.BytesPerSample())
	buf := make([]byte, 0, min(size, maxPrealloc))

	p := make([]byte, 32*1024)
	for {
		n, err := s.Read(p)
		buf = append(buf, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return buf, info, fmt.Errorf("decoding at sample %d: %w", s.Tell(), err)
		}
	}

	return buf, info, nil
}

// DecodeFile decodes the WAVE file at path. See DecodeAll.
func DecodeFile(path string, out pcm.Format, opts ...wav.Option) ([]byte, wav.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wav.Info{}, err
	}
	defer f.Close()

	return DecodeAll(f, out, opts...)
}

// Registry returns a decoder registry for the supported containers, keyed by
// file extension.
func Registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}
