// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidDstSize, "dst size must be multiple of channels"},
		{ErrUnknownFormat, "no decoder registered for format"},
		{ErrUnsupportedBitDepth, "unsupported bit depth"},
		{ErrMissingFormat, "reader has no stream format"},
	}

	for i, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
		for j, other := range tests {
			if i != j && errors.Is(tt.err, other.err) {
				t.Errorf("%v matches %v", tt.err, other.err)
			}
		}
	}
}
