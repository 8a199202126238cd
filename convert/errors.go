// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	// ErrUnsupported is returned by Lookup when either format is undefined.
	ErrUnsupported = errors.New("unsupported sample conversion")
)
