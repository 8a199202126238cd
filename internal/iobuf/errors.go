// SPDX-License-Identifier: EPL-2.0

package iobuf

import "errors"

var (
	ErrInvalidSize           = errors.New("buffer release exceeds buffered data")
	ErrInvalidStreamPosition = errors.New("stream position outside of data chunk")
)
