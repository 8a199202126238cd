// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"bytes"
	"errors"
	"io"
)

// ErrInjected is the default error returned by a failing ReadSeeker.
var ErrInjected = errors.New("wavtest: injected transport error")

// ReadSeeker serves bytes from memory and counts transport calls. Reads and
// Seeks are 1-based call counters; FailRead and FailSeek name the call that
// returns Err (zero never fails).
type ReadSeeker struct {
	r *bytes.Reader

	Reads int
	Seeks int

	FailRead int
	FailSeek int
	Err      error

	// MaxRead caps the bytes returned by a single Read when positive.
	MaxRead int
}

// NewReadSeeker returns a ReadSeeker over data.
func NewReadSeeker(data []byte) *ReadSeeker {
	return &ReadSeeker{r: bytes.NewReader(data)}
}

func (s *ReadSeeker) err() error {
	if s.Err != nil {
		return s.Err
	}
	return ErrInjected
}

func (s *ReadSeeker) Read(p []byte) (int, error) {
	s.Reads++
	if s.FailRead > 0 && s.Reads >= s.FailRead {
		return 0, s.err()
	}
	if s.MaxRead > 0 && len(p) > s.MaxRead {
		p = p[:s.MaxRead]
	}
	return s.r.Read(p)
}

func (s *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	s.Seeks++
	if s.FailSeek > 0 && s.Seeks >= s.FailSeek {
		return 0, s.err()
	}
	return s.r.Seek(offset, whence)
}

// Pos reports the current offset without counting a seek.
func (s *ReadSeeker) Pos() int64 {
	return s.r.Size() - int64(s.r.Len())
}

var _ io.ReadSeeker = (*ReadSeeker)(nil)
