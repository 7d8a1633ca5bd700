// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode wraps every failure to turn an input file into samples.
	ErrDecode = errors.New("decode failed")
	// ErrUnsupportedFormat indicates no decoder is registered for the input.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNoChannels indicates a source that reports zero channels.
	ErrNoChannels = errors.New("source has no channels")

	// ErrResample indicates an invalid resampling request.
	ErrResample = errors.New("resample failed")
	// ErrUnknownResampler indicates a resampler name that is not available.
	ErrUnknownResampler = errors.New("unknown resampler")

	// ErrChannelDerivation indicates the input cannot be mapped to four channels.
	ErrChannelDerivation = errors.New("channel derivation failed")
)
