// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ChunkInfo describes one top-level chunk of a RIFF/WAVE stream.
type ChunkInfo struct {
	ID string `json:"id"`
	// Size is the payload size including the pad byte of odd-sized chunks.
	Size int `json:"size"`
	// Offset is the position of the chunk header from the start of the
	// stream.
	Offset int64 `json:"offset"`
}

// ListChunks walks every top-level chunk of r in order. It only needs
// sequential access, so it works on pipes. A truncated last chunk is listed
// with its declared size.
func ListChunks(r io.Reader) ([]ChunkInfo, error) {
	parser := riff.New(r)
	if err := parser.ParseHeaders(); err != nil {
		if parser.ID != riff.RiffID {
			return nil, ErrNotRIFF
		}
		return nil, fmt.Errorf("reading RIFF header: %w", err)
	}
	if parser.ID != riff.RiffID {
		return nil, ErrNotRIFF
	}
	if parser.Format != riff.WavFormatID {
		return nil, ErrNotWAVE
	}

	var (
		chunks []ChunkInfo
		offset int64 = 12
	)

	for {
		chunk, err := parser.NextChunk()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return chunks, nil
		}
		if err != nil {
			return chunks, fmt.Errorf("reading chunk at %d: %w", offset, err)
		}

		chunks = append(chunks, ChunkInfo{
			ID:     string(chunk.ID[:]),
			Size:   chunk.Size,
			Offset: offset,
		})
		offset += chunkHeaderSize + int64(chunk.Size)

		// chunk.R is the whole stream, so skip exactly the payload.
		if _, err := io.CopyN(io.Discard, chunk.R, int64(chunk.Size)); err != nil {
			if errors.Is(err, io.EOF) {
				return chunks, nil
			}
			return chunks, fmt.Errorf("skipping %q chunk: %w", chunk.ID[:], err)
		}
	}
}
