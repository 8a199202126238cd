// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Levels summarises the amplitude of a stream per channel.
type Levels struct {
	Frames int64     `json:"frames"`
	Peak   []float64 `json:"peak"`
	RMS    []float64 `json:"rms"`
}

// PeakDBFS returns the peak of channel ch in dB relative to full scale.
// Silence is -Inf.
func (l Levels) PeakDBFS(ch int) float64 { return dbfs(l.Peak[ch]) }

// RMSDBFS returns the RMS level of channel ch in dB relative to full scale.
func (l Levels) RMSDBFS(ch int) float64 { return dbfs(l.RMS[ch]) }

func dbfs(v float64) float64 {
	if v == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// Measure reads src to the end and returns its levels. It does not close
// src.
func Measure(src Source) (Levels, error) {
	channels := src.Channels()
	if channels <= 0 {
		return Levels{}, ErrInvalidDstSize
	}

	size := max(src.BufSize()/channels, 1) * channels
	buf := make([]float32, size)

	peak := make([]float64, channels)
	sum := make([]float64, channels)
	var samples int64

	for {
		n, err := src.ReadSamples(buf)
		for i, v := range buf[:n] {
			ch := i % channels
			x := math.Abs(float64(v))
			peak[ch] = max(peak[ch], x)
			sum[ch] += x * x
		}
		samples += int64(n)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Levels{}, fmt.Errorf("measuring levels: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := samples / int64(channels)
	rms := make([]float64, channels)
	if frames > 0 {
		for ch := range rms {
			rms[ch] = math.Sqrt(sum[ch] / float64(frames))
		}
	}

	return Levels{Frames: frames, Peak: peak, RMS: rms}, nil
}
