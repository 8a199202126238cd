// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// probeSize is read at open. It covers the RIFF header and a
	// fmt chunk of up to 60 bytes when fmt is the first chunk.
	probeSize = 80

	// minStreamSize is the smallest probe that can hold RIFF, WAVE and a
	// minimal fmt chunk.
	minStreamSize = 36

	// minFmtSize is the payload size of a plain PCM fmt chunk.
	minFmtSize = 16

	// fmtPayload is where the fmt payload sits in the probe when fmt is the
	// first chunk. Later fmt chunks are re-read to the same position.
	fmtPayload = 20

	chunkHeaderSize = 8
)

type chunkID [4]byte

var (
	riffID = chunkID{'R', 'I', 'F', 'F'}
	waveID = chunkID{'W', 'A', 'V', 'E'}
	fmtID  = chunkID{'f', 'm', 't', ' '}
	dataID = chunkID{'d', 'a', 't', 'a'}
	noID   chunkID
)

func (id chunkID) String() string { return string(id[:]) }

func idAt(b []byte) chunkID {
	var id chunkID
	copy(id[:], b)
	return id
}

type chunkHeader struct {
	id   chunkID
	size uint32
}

func parseChunkHeader(b []byte) chunkHeader {
	var h chunkHeader
	copy(h.id[:], b[0:4])
	h.size = binary.LittleEndian.Uint32(b[4:8])
	return h
}

// header is everything open learns from the container.
type header struct {
	format streamFormat
	fmt    region
	data   region
}

// region is a chunk payload: byte offset from the start of the stream and
// byte length.
type region struct {
	offset uint64
	size   uint64
}

// readHeader parses the container from the current transport position, which
// must be the start of the stream.
func readHeader(rs io.ReadSeeker) (header, error) {
	var probe [probeSize]byte

	n, err := readFull(rs, probe[:])
	if err != nil {
		return header{}, fmt.Errorf("reading header: %w", err)
	}
	if n < minStreamSize {
		return header{}, ErrNotRIFF
	}

	if idAt(probe[0:4]) != riffID {
		return header{}, ErrNotRIFF
	}
	if idAt(probe[8:12]) != waveID {
		return header{}, ErrNotWAVE
	}

	offset := uint64(12)
	fmtChunk := parseChunkHeader(probe[12:20])
	if fmtChunk.id == dataID {
		return header{}, ErrFormatChunkMissing
	}

	if fmtChunk.id != fmtID {
		// fmt has to come before data.
		offset, fmtChunk, err = searchChunk(rs, offset, fmtChunk, fmtID, dataID)
		if errors.Is(err, ErrChunkNotFound) {
			return header{}, ErrFormatChunkMissing
		} else if err != nil {
			return header{}, err
		}

		n, err := readFull(rs, probe[fmtPayload:])
		if err != nil {
			return header{}, fmt.Errorf("reading fmt chunk: %w", err)
		}
		if n < minFmtSize {
			return header{}, ErrStreamInvalid
		}
		clear(probe[fmtPayload+n:])
	}

	if fmtChunk.size < minFmtSize {
		return header{}, ErrStreamInvalid
	}

	format, err := resolveFormat(fmtChunk.size, probe[fmtPayload:])
	if err != nil {
		return header{}, err
	}

	// Always scan from the fmt chunk so a large fmt payload never has to fit
	// in the probe.
	dataOffset, dataChunk, err := searchChunk(rs, offset, fmtChunk, dataID, noID)
	if errors.Is(err, ErrChunkNotFound) {
		return header{}, ErrDataChunkMissing
	} else if err != nil {
		return header{}, err
	}

	return header{
		format: format,
		fmt:    region{offset: offset + chunkHeaderSize, size: uint64(fmtChunk.size)},
		data:   region{offset: dataOffset + chunkHeaderSize, size: uint64(dataChunk.size)},
	}, nil
}

// searchChunk walks the chunk list starting with the chunk h at offset and
// returns the first chunk with the wanted id. Each step seeks past the
// current payload plus its pad byte and reads the next header. Reaching stop
// or the end of the stream yields ErrChunkNotFound.
//
// Writers that omit the pad byte after an odd-sized chunk are not supported.
func searchChunk(rs io.ReadSeeker, offset uint64, h chunkHeader, want, stop chunkID) (uint64, chunkHeader, error) {
	if h.id == want {
		return offset, h, nil
	}

	var buf [chunkHeaderSize]byte
	for {
		offset += chunkHeaderSize + uint64(h.size)
		if offset&1 != 0 {
			offset++
		}

		if _, err := rs.Seek(int64(offset), io.SeekStart); err != nil {
			return 0, chunkHeader{}, fmt.Errorf("seeking to chunk at %d: %w", offset, err)
		}

		n, err := readFull(rs, buf[:])
		if err != nil {
			return 0, chunkHeader{}, fmt.Errorf("reading chunk header at %d: %w", offset, err)
		}

		h = parseChunkHeader(buf[:])
		if n < chunkHeaderSize || (stop != noID && h.id == stop) {
			return 0, chunkHeader{}, ErrChunkNotFound
		}
		if h.id == want {
			return offset, h, nil
		}
	}
}

// readFull reads until p is full or the stream ends. A short stream is not an
// error; the caller checks the count.
func readFull(r io.Reader, p []byte) (int, error) {
	n, err := io.ReadFull(r, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}
