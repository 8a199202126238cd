// SPDX-License-Identifier: EPL-2.0

// Package pcm enumerates the uncompressed sample encodings understood by the
// decoder, both as native stream formats and as caller selected output
// formats.
//
// The numeric values are stable and may be stored or passed across API
// boundaries:
//
//	U8      0  unsigned 8-bit PCM
//	S16     1  signed 16-bit PCM
//	S24     2  signed 24-bit PCM, packed in 3 bytes
//	S32     3  signed 32-bit PCM
//	Float32 4  32-bit IEEE float
//	Float64 5  64-bit IEEE float
//
// All multi-byte encodings are little-endian.
package pcm

import (
	"fmt"
	"strings"
)

// Format identifies a sample encoding.
type Format uint8

const (
	U8 Format = iota
	S16
	S24
	S32
	Float32
	Float64

	// NumFormats is the number of defined formats.
	NumFormats = 6
)

var names = [NumFormats]string{"u8", "s16", "s24", "s32", "f32", "f64"}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool { return f < NumFormats }

// Bits returns the width of one sample in bits, or 0 for an invalid format.
func (f Format) Bits() int {
	switch f {
	case U8:
		return 8
	case S16:
		return 16
	case S24:
		return 24
	case S32, Float32:
		return 32
	case Float64:
		return 64
	}
	return 0
}

// BytesPerSample returns the width of one sample in bytes.
func (f Format) BytesPerSample() int { return f.Bits() / 8 }

// IsFloat reports whether f is an IEEE float encoding.
func (f Format) IsFloat() bool { return f == Float32 || f == Float64 }

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("pcm.Format(%d)", uint8(f))
	}
	return names[f]
}

// ParseFormat parses the short name of a format ("u8", "s16", "s24", "s32",
// "f32", "f64"). A few common aliases are accepted too.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u8", "uint8", "pcm_u8":
		return U8, nil
	case "s16", "int16", "pcm_s16":
		return S16, nil
	case "s24", "int24", "pcm_s24":
		return S24, nil
	case "s32", "int32", "pcm_s32":
		return S32, nil
	case "f32", "float32", "float":
		return Float32, nil
	case "f64", "float64", "double":
		return Float64, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
