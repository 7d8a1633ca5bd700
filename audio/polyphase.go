// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"

	resampler "github.com/tphakala/go-audio-resampler"
)

// PolyphaseResampler runs the soxr-style polyphase FIR resampler from
// go-audio-resampler at its high quality preset. Pure Go, no cgo.
type PolyphaseResampler struct{}

func (PolyphaseResampler) Resample(samples []float32, srcRate, dstRate, frames int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 || frames < 0 {
		return nil, fmt.Errorf("%w: rate %d -> %d, frames %d", ErrResample, srcRate, dstRate, frames)
	}

	if frames == 0 || len(samples) == 0 {
		return make([]float32, frames), nil
	}

	if srcRate == dstRate {
		return fitFrames(slices.Clone(samples), frames), nil
	}

	out, err := resampler.ResampleMonoFloat32(samples, float64(srcRate), float64(dstRate), resampler.QualityHigh)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return fitFrames(out, frames), nil
}

// fitFrames pads with silence or truncates so len(out) == frames.
func fitFrames(in []float32, frames int) []float32 {
	if len(in) >= frames {
		return in[:frames]
	}
	return append(slices.Clip(in), make([]float32, frames-len(in))...)
}
