// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// Callbacks is a transport given as a function table. UserData is passed
// back to every call unchanged; the session never inspects or frees it.
//
// Read fills p and returns the number of bytes written; zero bytes with a
// nil error means end of stream. Seek positions the stream at an absolute
// byte offset. Tell reports the current absolute byte offset. Errors are
// returned unchanged to the caller of the session operation that triggered
// them.
type Callbacks struct {
	Read     func(userData any, p []byte) (int, error)
	Seek     func(userData any, offset uint64) error
	Tell     func(userData any) (uint64, error)
	UserData any
}

// ReadSeeker adapts cb to io.ReadSeeker.
func (cb *Callbacks) ReadSeeker() (io.ReadSeeker, error) {
	if cb == nil || cb.Read == nil || cb.Seek == nil || cb.Tell == nil {
		return nil, fmt.Errorf("%w: incomplete callbacks", ErrInvalidParam)
	}
	return callbackTransport{cb: cb}, nil
}

type callbackTransport struct {
	cb *Callbacks
}

func (t callbackTransport) Read(p []byte) (int, error) {
	n, err := t.cb.Read(t.cb.UserData, p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

func (t callbackTransport) Seek(offset int64, whence int) (int64, error) {
	var target int64

	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		pos, err := t.cb.Tell(t.cb.UserData)
		if err != nil {
			return 0, err
		}
		if offset == 0 {
			return int64(pos), nil
		}
		target = int64(pos) + offset
	default:
		return 0, fmt.Errorf("%w: whence %d", ErrInvalidParam, whence)
	}

	if target < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrInvalidParam, target)
	}
	if err := t.cb.Seek(t.cb.UserData, uint64(target)); err != nil {
		return 0, err
	}
	return target, nil
}
