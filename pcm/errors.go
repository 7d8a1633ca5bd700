// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrUnsupportedBitDepth indicates a depth other than 16 or 24.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrTruncatedBlock indicates a block that does not hold whole samples.
	ErrTruncatedBlock = errors.New("truncated PCM block")
)
