// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"
)

// OutputChannels is the fixed number of derived channels.
const OutputChannels = 4

// RearGain attenuates the duplicated rear pair of a stereo input.
const RearGain float32 = 0.7

// Quad is the derived channel set. All four slices share the same length.
type Quad [OutputChannels][]float32

// Frames returns the per-channel length.
func (q Quad) Frames() int { return len(q[0]) }

// DeriveQuad maps buf onto exactly four channels:
//   - mono: four copies of the channel
//   - stereo: L, R, L*RearGain, R*RearGain
//   - four or more: the first four channels, in order
//   - anything else: channel i takes source channel i%N
//
// Outputs never alias buf and are cut to the shortest derived channel.
func DeriveQuad(buf *Buffer) (Quad, error) {
	var q Quad

	n := buf.NumChannels()
	if n == 0 {
		return q, fmt.Errorf("%w: %w", ErrChannelDerivation, ErrNoChannels)
	}

	frames := buf.Frames()
	src := buf.Channels

	switch {
	case n == 1:
		mono := src[0][:frames]
		for i := range q {
			q[i] = slices.Clone(mono)
		}

	case n == 2:
		left := src[0][:frames]
		right := src[1][:frames]
		q[0] = slices.Clone(left)
		q[1] = slices.Clone(right)
		q[2] = scaled(left, RearGain)
		q[3] = scaled(right, RearGain)

	case n >= OutputChannels:
		for i := range q {
			q[i] = slices.Clone(src[i][:frames])
		}

	default:
		for i := range q {
			q[i] = slices.Clone(src[i%n][:frames])
		}
	}

	return q, nil
}

func scaled(in []float32, gain float32) []float32 {
	out := make([]float32, len(in))
	for i, s := range in {
		out[i] = s * gain
	}
	return out
}
