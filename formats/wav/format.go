// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/riffstream/pcm"
)

// Format tags from the fmt chunk.
const (
	TagPCM        uint16 = 0x0001
	TagIEEEFloat  uint16 = 0x0003
	TagExtensible uint16 = 0xFFFE
)

// extensibleSize is the cbSize value that marks a WAVE_FORMAT_EXTENSIBLE
// extension block.
const extensibleSize = 22

// streamFormat is the native sample layout of a stream.
type streamFormat struct {
	tag            uint16
	format         pcm.Format
	channels       int
	sampleRate     int
	bitsPerSample  int
	bytesPerSample int
	blockSize      int
}

// resolveFormat decodes a fmt chunk payload. b must hold at least the first
// 26 bytes of the payload; bytes past size may be garbage and are only read
// when size says they exist.
func resolveFormat(size uint32, b []byte) (streamFormat, error) {
	f := streamFormat{
		tag:           binary.LittleEndian.Uint16(b[0:2]),
		channels:      int(binary.LittleEndian.Uint16(b[2:4])),
		sampleRate:    int(binary.LittleEndian.Uint32(b[4:8])),
		bitsPerSample: int(binary.LittleEndian.Uint16(b[14:16])),
	}
	f.bytesPerSample = f.bitsPerSample / 8
	f.blockSize = f.bytesPerSample * f.channels

	switch {
	case f.channels == 0:
		return streamFormat{}, ErrZeroChannels
	case f.sampleRate == 0:
		return streamFormat{}, ErrZeroSampleRate
	case f.bitsPerSample == 0:
		return streamFormat{}, ErrZeroBitsPerSample
	}

	if size > minFmtSize && binary.LittleEndian.Uint16(b[16:18]) == extensibleSize && f.tag == TagExtensible {
		f.tag = binary.LittleEndian.Uint16(b[24:26])
	}

	format, err := nativeFormat(f.tag, f.bitsPerSample)
	if err != nil {
		return streamFormat{}, err
	}
	f.format = format

	return f, nil
}

func nativeFormat(tag uint16, bits int) (pcm.Format, error) {
	switch {
	case tag == TagPCM && bits == 8:
		return pcm.U8, nil
	case tag == TagPCM && bits == 16:
		return pcm.S16, nil
	case tag == TagPCM && bits == 24:
		return pcm.S24, nil
	case tag == TagPCM && bits == 32:
		return pcm.S32, nil
	case tag == TagIEEEFloat && bits == 32:
		return pcm.Float32, nil
	case tag == TagIEEEFloat && bits == 64:
		return pcm.Float64, nil
	}
	return 0, fmt.Errorf("%w: tag %#04x with %d bits", ErrFormatUnsupported, tag, bits)
}
