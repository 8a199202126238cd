// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/riffstream/audio"
)

// Decoder opens WAVE streams as an audio.Source. Options are passed to Open.
type Decoder struct {
	Options []Option
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	s, err := Open(rs, d.Options...)
	if err != nil {
		return nil, err
	}

	ir, err := NewIntReader(s)
	if err != nil {
		s.Close()
		return nil, err
	}

	src, err := audio.NewPCMSource(ir, ir.BitDepth())
	if err != nil {
		s.Close()
		return nil, err
	}

	return src, nil
}
