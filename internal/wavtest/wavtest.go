// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds RIFF/WAVE fixtures in memory and provides
// instrumented transports for exercising the decoder.
package wavtest

import (
	"bytes"
	"encoding/binary"
)

// Format tags used in fixtures.
const (
	TagPCM        = 0x0001
	TagFloat      = 0x0003
	TagExtensible = 0xFFFE
)

// Chunk is an arbitrary RIFF chunk. A pad byte is added when the payload has
// odd length.
type Chunk struct {
	ID      string
	Payload []byte
}

// Layout describes a wave file to build. Zero Tag means PCM.
type Layout struct {
	Tag        uint16
	Channels   int
	SampleRate int
	Bits       int

	// Extensible wraps the format in a WAVE_FORMAT_EXTENSIBLE fmt chunk with
	// SubFormat as the real tag.
	Extensible bool
	SubFormat  uint16

	// FmtExtra is appended to a plain 16-byte fmt body.
	FmtExtra []byte

	Before  []Chunk // between "WAVE" and "fmt "
	Between []Chunk // between "fmt " and "data"
	After   []Chunk // after "data"

	Data []byte

	OmitFmt  bool
	OmitData bool
}

// Build serialises s. The RIFF size field covers everything after it.
func Build(s Layout) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	for _, c := range s.Before {
		writeChunk(body, c.ID, c.Payload)
	}
	if !s.OmitFmt {
		writeChunk(body, "fmt ", fmtPayload(s))
	}
	for _, c := range s.Between {
		writeChunk(body, c.ID, c.Payload)
	}
	if !s.OmitData {
		writeChunk(body, "data", s.Data)
	}
	for _, c := range s.After {
		writeChunk(body, c.ID, c.Payload)
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// PCM16 builds a canonical 44-byte-header 16-bit PCM file.
func PCM16(sampleRate, channels int, samples []int16) []byte {
	data := new(bytes.Buffer)
	binary.Write(data, binary.LittleEndian, samples)

	return Build(Layout{
		Channels:   channels,
		SampleRate: sampleRate,
		Bits:       16,
		Data:       data.Bytes(),
	})
}

func fmtPayload(s Layout) []byte {
	tag := s.Tag
	if tag == 0 {
		tag = TagPCM
	}
	if s.Extensible {
		tag = TagExtensible
	}

	blockAlign := uint16(s.Channels * s.Bits / 8)
	byteRate := uint32(s.SampleRate) * uint32(blockAlign)

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, tag)
	binary.Write(buf, binary.LittleEndian, uint16(s.Channels))
	binary.Write(buf, binary.LittleEndian, uint32(s.SampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(s.Bits))

	if s.Extensible {
		binary.Write(buf, binary.LittleEndian, uint16(22))     // cbSize
		binary.Write(buf, binary.LittleEndian, uint16(s.Bits)) // valid bits
		binary.Write(buf, binary.LittleEndian, uint32(0))      // channel mask
		binary.Write(buf, binary.LittleEndian, s.SubFormat)
		// Remainder of the KSDATAFORMAT_SUBTYPE GUID.
		buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})
		return buf.Bytes()
	}

	buf.Write(s.FmtExtra)
	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, payload []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	if len(payload)%2 == 1 {
		buf.WriteByte(0)
	}
}
