// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// BitDepth is the number of bits per quantized sample.
type BitDepth int

const (
	Depth16 BitDepth = 16
	Depth24 BitDepth = 24
)

// Full-scale values per depth. Positive samples scale by the max value and
// negative samples by the magnitude of the min value.
const (
	MaxInt16 = 32767.0
	MinInt16 = -32768.0
	MaxInt24 = 8388607.0
	MinInt24 = -8388608.0
)

// Quad holds the four encoded channel blocks in output order.
type Quad [4][]byte

// Validate reports ErrUnsupportedBitDepth for anything but 16 and 24.
func (d BitDepth) Validate() error {
	switch d {
	case Depth16, Depth24:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, int(d))
}

// BytesPerSample returns 2 or 3. Zero for unsupported depths.
func (d BitDepth) BytesPerSample() int {
	switch d {
	case Depth16:
		return 2
	case Depth24:
		return 3
	}
	return 0
}

// Range returns the signed integer bounds of d.
func (d BitDepth) Range() (lo, hi float64) {
	if d == Depth24 {
		return MinInt24, MaxInt24
	}
	return MinInt16, MaxInt16
}

// Peak returns the largest absolute sample value. NaN samples are ignored.
func Peak(samples []float32) float32 {
	var peak float32
	for _, s := range samples {
		if s != s {
			continue
		}
		if s < 0 {
			s = -s
		}
		peak = max(peak, s)
	}
	return peak
}

// Encode quantizes samples to little-endian signed PCM.
// A channel whose peak exceeds 1 is scaled down by its peak first; samples is
// not modified. No dithering is applied.
func Encode(samples []float32, depth BitDepth) ([]byte, error) {
	if err := depth.Validate(); err != nil {
		return nil, err
	}

	gain := 1.0
	if peak := Peak(samples); peak > 1.0 {
		gain = 1.0 / float64(peak)
	}

	lo, hi := depth.Range()
	size := depth.BytesPerSample()
	out := make([]byte, len(samples)*size)

	for i, s := range samples {
		v := quantize(float64(s)*gain, lo, hi)

		b := out[i*size:]
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		if size == 3 {
			// low three bytes of the little-endian int32
			b[2] = byte(v >> 16)
		}
	}

	return out, nil
}

// quantize maps NaN to silence.
func quantize(x, lo, hi float64) int32 {
	if math.IsNaN(x) {
		return 0
	}
	if x >= 0 {
		x *= hi
	} else {
		x *= -lo
	}
	return int32(max(lo, min(hi, math.Round(x))))
}

// EncodeQuad encodes four channels concurrently. Blocks keep channel order.
func EncodeQuad(ctx context.Context, channels [4][]float32, depth BitDepth) (Quad, error) {
	var q Quad

	if err := depth.Validate(); err != nil {
		return q, err
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, ch := range channels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w", err)
			}

			block, err := Encode(ch, depth)
			if err != nil {
				return fmt.Errorf("channel %d: %w", i, err)
			}
			q[i] = block
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Quad{}, err
	}

	return q, nil
}

// Decode unpacks a block into signed samples, sign-extending 24-bit values.
func Decode(block []byte, depth BitDepth) ([]int32, error) {
	if err := depth.Validate(); err != nil {
		return nil, err
	}

	size := depth.BytesPerSample()
	if len(block)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedBlock, len(block), size)
	}

	out := make([]int32, len(block)/size)
	for i := range out {
		b := block[i*size:]
		if size == 2 {
			out[i] = int32(int16(uint16(b[0]) | uint16(b[1])<<8))
			continue
		}
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		out[i] = v << 8 >> 8
	}

	return out, nil
}
