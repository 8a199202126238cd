// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/riffstream/internal/iobuf"
)

var (
	ErrInvalidParam = errors.New("invalid parameter")
	ErrAlloc        = errors.New("buffer allocation failed")
	ErrClosed       = errors.New("session is closed")

	ErrNotRIFF            = errors.New("not a RIFF stream")
	ErrNotWAVE            = errors.New("not a WAVE stream")
	ErrStreamInvalid      = errors.New("invalid WAVE stream")
	ErrChunkNotFound      = errors.New("chunk not found")
	ErrFormatChunkMissing = errors.New("fmt chunk missing")
	ErrDataChunkMissing   = errors.New("data chunk missing")

	ErrZeroChannels      = errors.New("stream has zero channels")
	ErrZeroSampleRate    = errors.New("stream has zero sample rate")
	ErrZeroBitsPerSample = errors.New("stream has zero bits per sample")

	ErrFormatUnsupported = errors.New("unsupported sample format")

	ErrBufferInvalidSize           = iobuf.ErrInvalidSize
	ErrBufferInvalidStreamPosition = iobuf.ErrInvalidStreamPosition
)
