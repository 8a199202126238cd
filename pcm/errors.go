// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
	ErrUnknownFormat = errors.New("unknown sample format")
)
