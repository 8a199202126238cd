// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakePCM serves a fixed slice of integer samples.
type fakePCM struct {
	format *goaudio.Format
	data   []int
	pos    int
	err    error
	closed bool
}

func (f *fakePCM) Format() *goaudio.Format { return f.format }

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func (f *fakePCM) Close() error {
	f.closed = true
	return nil
}

func TestNewPCMSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		in   []int
		want []float32
	}{
		{8, []int{-128, 0, 64}, []float32{-1, 0, 0.5}},
		{16, []int{-32768, 16384}, []float32{-1, 0.5}},
		{24, []int{-8388608, 4194304}, []float32{-1, 0.5}},
		{32, []int{-2147483648, 1073741824}, []float32{-1, 0.5}},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			r := &fakePCM{format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, data: tt.in}
			src, err := NewPCMSource(r, tt.bits)
			if err != nil {
				t.Fatalf("NewPCMSource() error = %v", err)
			}

			dst := make([]float32, 8)
			n, err := src.ReadSamples(dst)
			if err != nil || n != len(tt.want) {
				t.Fatalf("ReadSamples() = %d, %v; want %d, nil", n, err, len(tt.want))
			}
			for i, w := range tt.want {
				if dst[i] != w {
					t.Errorf("sample %d = %v, want %v", i, dst[i], w)
				}
			}

			if _, err := src.ReadSamples(dst); !errors.Is(err, io.EOF) {
				t.Errorf("ReadSamples() at end error = %v, want io.EOF", err)
			}
		})
	}
}

func TestNewPCMSource_Errors(t *testing.T) {
	t.Parallel()

	r := &fakePCM{format: &goaudio.Format{NumChannels: 2, SampleRate: 8000}}
	if _, err := NewPCMSource(r, 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewPCMSource(12 bits) error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := NewPCMSource(&fakePCM{}, 16); !errors.Is(err, ErrMissingFormat) {
		t.Errorf("NewPCMSource(no format) error = %v, want ErrMissingFormat", err)
	}

	src, err := NewPCMSource(r, 16)
	if err != nil {
		t.Fatalf("NewPCMSource() error = %v", err)
	}
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) on stereo error = %v, want ErrInvalidDstSize", err)
	}

	boom := errors.New("boom")
	r.err = boom
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want reader error", err)
	}
}

func TestPCMSource_Close(t *testing.T) {
	t.Parallel()

	r := &fakePCM{format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}}
	src, err := NewPCMSource(r, 16)
	if err != nil {
		t.Fatalf("NewPCMSource() error = %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !r.closed {
		t.Error("Close() did not close the reader")
	}
}
