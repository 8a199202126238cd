// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/riffstream/pcm"
)

// Func converts a run of samples from src into dst.
//
// src starts at the first input sample touched by the call. When head is
// non-zero that first sample is only partially emitted: the sample is
// converted in full and bytes [offset, offset+head) of the converted value
// are written. samples whole samples follow, and when tail is non-zero one
// more sample is converted and only its first tail bytes are written.
//
// Exactly head + samples*outBytes + tail bytes of dst are written. dst and
// src must be large enough; a short slice panics.
type Func func(dst, src []byte, samples, offset, head, tail int)

// intScale maps a left-justified 32-bit value onto [-1, 1).
const intScale = 2147483648.0

// Lookup returns the routine converting from into to. The same routine can be
// cached and reused for the lifetime of a stream.
func Lookup(from, to pcm.Format) (Func, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnsupported, from, to)
	}

	in, out := from.BytesPerSample(), to.BytesPerSample()
	if from == to {
		return identity(in), nil
	}

	var one func(dst, src []byte)
	switch {
	case !from.IsFloat() && !to.IsFloat():
		dec, enc := intDecoder(from), intEncoder(to)
		one = func(dst, src []byte) { enc(dst, dec(src)) }
	case !from.IsFloat():
		dec, enc := intDecoder(from), floatEncoder(to)
		one = func(dst, src []byte) { enc(dst, float64(dec(src))/intScale) }
	default:
		dec, enc := floatDecoder(from), floatEncoder(to)
		one = func(dst, src []byte) { enc(dst, dec(src)) }
	}

	return span(in, out, one), nil
}

// Bytes returns how many bytes a Func writes for the given span.
func Bytes(to pcm.Format, samples, head, tail int) int {
	return head + samples*to.BytesPerSample() + tail
}

// identity copies raw bytes. A head is simply the remainder of a sample that
// starts offset bytes in.
func identity(size int) Func {
	return func(dst, src []byte, samples, offset, head, tail int) {
		n := head + samples*size + tail
		copy(dst[:n], src[offset:offset+n])
	}
}

// span drives one per-sample conversion over a (head, body, tail) run. Partial
// samples go through a register so a sample split across two calls is
// converted the same way both times.
func span(in, out int, one func(dst, src []byte)) Func {
	return func(dst, src []byte, samples, offset, head, tail int) {
		var reg [8]byte

		if head > 0 {
			one(reg[:out], src[:in])
			copy(dst[:head], reg[offset:offset+head])
			src = src[in:]
			dst = dst[head:]
		}

		for i := range samples {
			one(dst[i*out:i*out+out], src[i*in:i*in+in])
		}

		if tail > 0 {
			one(reg[:out], src[samples*in:samples*in+in])
			copy(dst[samples*out:samples*out+tail], reg[:tail])
		}
	}
}

// Integer samples are widened to a left-justified int32 so that widening
// keeps amplitude and narrowing keeps the most significant bytes.

func intDecoder(f pcm.Format) func([]byte) int32 {
	switch f {
	case pcm.U8:
		return func(b []byte) int32 { return (int32(b[0]) - 128) << 24 }
	case pcm.S16:
		return func(b []byte) int32 { return int32(int16(binary.LittleEndian.Uint16(b))) << 16 }
	case pcm.S24:
		return func(b []byte) int32 {
			return int32(uint32(b[0])<<8 | uint32(b[1])<<16 | uint32(b[2])<<24)
		}
	default:
		return func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) }
	}
}

func intEncoder(f pcm.Format) func([]byte, int32) {
	switch f {
	case pcm.U8:
		return func(b []byte, v int32) { b[0] = byte((v >> 24) + 128) }
	case pcm.S16:
		return func(b []byte, v int32) { binary.LittleEndian.PutUint16(b, uint16(v>>16)) }
	case pcm.S24:
		return putInt24
	default:
		return func(b []byte, v int32) { binary.LittleEndian.PutUint32(b, uint32(v)) }
	}
}

func putInt24(b []byte, v int32) {
	b[0] = byte(v >> 8)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 24)
}

func floatDecoder(f pcm.Format) func([]byte) float64 {
	if f == pcm.Float32 {
		return func(b []byte) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	}
	return func(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }
}

// floatEncoder writes a value in [-1, 1] in the target format. Integer targets
// scale by 2^(bits-1) - 0.5 so that +1.0 lands on the positive rail instead of
// wrapping.
func floatEncoder(f pcm.Format) func([]byte, float64) {
	switch f {
	case pcm.U8:
		return func(b []byte, x float64) { b[0] = byte(clamp(x)*127.5 + 128) }
	case pcm.S16:
		return func(b []byte, x float64) {
			binary.LittleEndian.PutUint16(b, uint16(int16(clamp(x)*32767.5)))
		}
	case pcm.S24:
		return func(b []byte, x float64) { putInt24(b, int32(clamp(x)*2147483647.5)) }
	case pcm.S32:
		return func(b []byte, x float64) {
			binary.LittleEndian.PutUint32(b, uint32(int32(clamp(x)*2147483647.5)))
		}
	case pcm.Float32:
		return func(b []byte, x float64) {
			binary.LittleEndian.PutUint32(b, math.Float32bits(float32(x)))
		}
	default:
		return func(b []byte, x float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(x)) }
	}
}

func clamp(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	case math.IsNaN(x):
		return 0
	}
	return x
}
