// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"io"
	"math"
)

// Source is an in-memory float32 sample generator with the method set of
// audio.Source. Frames are produced by a per-frame, per-channel function.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	value    func(frame, channel int) float32
}

// NewSource returns a Source producing frames frames of value.
func NewSource(rate, channels, frames int, value func(frame, channel int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, value: value}
}

// Constant returns a Source where every sample equals v.
func Constant(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine returns a Source with a full-scale sine at freq on every channel.
func Sine(rate, channels, frames int, freq float64) *Source {
	return NewSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 1024 * s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.value(s.pos+f, ch)
		}
	}
	s.pos += n

	return n * s.channels, nil
}
