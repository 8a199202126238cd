// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/ik5/riffstream/internal/wavtest"
)

// stubDecoder returns a short constant source.
type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return wavtest.Constant(44100, 2, 100, 0), nil
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &stubDecoder{name: "wav"}
	aiffDecoder := &stubDecoder{name: "aiff"}

	registry.Register("wav", wavDecoder)
	registry.Register("AIFF", aiffDecoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"WAV", wavDecoder, true},
		{"aiff", aiffDecoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, err := registry.ForPath("/tmp/Take 1.WAV")
	if err != nil {
		t.Fatalf("ForPath() error = %v", err)
	}
	if got != decoder {
		t.Error("ForPath() returned wrong decoder")
	}

	for _, path := range []string{"song.mp3", "noext"} {
		if _, err := registry.ForPath(path); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ForPath(%q) error = %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, name := range []string{"wave", "aif", "wav", "aiff"} {
		registry.Register(name, &stubDecoder{name: name})
	}

	want := []string{"aif", "aiff", "wav", "wave"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("format", decoder)
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Get("format")
			_ = registry.Formats()
		}()
	}
	wg.Wait()

	if got, ok := registry.Get("format"); !ok || got != decoder {
		t.Error("Registry lost the decoder after concurrent operations")
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	seeker := bytes.NewReader([]byte("abc"))
	rs, err := ReadSeeker(seeker)
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if rs != io.ReadSeeker(seeker) {
		t.Error("ReadSeeker() wrapped a reader that already seeks")
	}

	rs, err = ReadSeeker(struct{ io.Reader }{strings.NewReader("xyz")})
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "yz" {
		t.Errorf("after Seek(1) read %q, want %q", rest, "yz")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &stubDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
