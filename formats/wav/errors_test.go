// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrInvalidParam, ErrAlloc, ErrClosed,
		ErrNotRIFF, ErrNotWAVE, ErrStreamInvalid, ErrChunkNotFound,
		ErrFormatChunkMissing, ErrDataChunkMissing,
		ErrZeroChannels, ErrZeroSampleRate, ErrZeroBitsPerSample,
		ErrFormatUnsupported, ErrBufferInvalidSize, ErrBufferInvalidStreamPosition,
	}

	for i, a := range all {
		if a == nil || a.Error() == "" {
			t.Fatalf("error %d is empty", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%q matches %q", a, b)
			}
		}
	}
}
