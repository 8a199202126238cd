// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"testing"
)

func TestFormat_Sizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		bits   int
		bytes  int
		float  bool
		name   string
	}{
		{U8, 8, 1, false, "u8"},
		{S16, 16, 2, false, "s16"},
		{S24, 24, 3, false, "s24"},
		{S32, 32, 4, false, "s32"},
		{Float32, 32, 4, true, "f32"},
		{Float64, 64, 8, true, "f64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !tt.format.Valid() {
				t.Fatalf("%v.Valid() = false, want true", tt.format)
			}
			if got := tt.format.Bits(); got != tt.bits {
				t.Errorf("Bits() = %d, want %d", got, tt.bits)
			}
			if got := tt.format.BytesPerSample(); got != tt.bytes {
				t.Errorf("BytesPerSample() = %d, want %d", got, tt.bytes)
			}
			if got := tt.format.IsFloat(); got != tt.float {
				t.Errorf("IsFloat() = %v, want %v", got, tt.float)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestFormat_StableValues(t *testing.T) {
	t.Parallel()

	want := []Format{U8, S16, S24, S32, Float32, Float64}
	for i, f := range want {
		if int(f) != i {
			t.Errorf("%s = %d, want %d", f, f, i)
		}
	}
}

func TestFormat_Invalid(t *testing.T) {
	t.Parallel()

	f := Format(NumFormats)
	if f.Valid() {
		t.Error("Valid() = true for out of range format")
	}
	if f.Bits() != 0 || f.BytesPerSample() != 0 {
		t.Errorf("Bits() = %d, BytesPerSample() = %d, want 0, 0", f.Bits(), f.BytesPerSample())
	}
	if f.String() != "pcm.Format(6)" {
		t.Errorf("String() = %q", f.String())
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for i := range Format(NumFormats) {
		got, err := ParseFormat(i.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", i.String(), err)
		}
		if got != i {
			t.Errorf("ParseFormat(%q) = %v, want %v", i.String(), got, i)
		}
	}

	if got, err := ParseFormat(" Float "); err != nil || got != Float32 {
		t.Errorf("ParseFormat(\" Float \") = %v, %v; want f32, nil", got, err)
	}

	_, err := ParseFormat("mp3")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(\"mp3\") error = %v, want ErrUnknownFormat", err)
	}
}
