// SPDX-License-Identifier: EPL-2.0

//go:build samplerate

package audio

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"
)

func init() {
	registerResampler("sinc", func() Resampler { return SincResampler{} })
}

// SincResampler resamples through libsamplerate.
// Requires cgo and libsamplerate; enabled with the samplerate build tag.
type SincResampler struct {
	// Converter is a gosamplerate converter type. Zero means SRC_SINC_BEST_QUALITY.
	Converter int
}

func (s SincResampler) Resample(samples []float32, srcRate, dstRate, frames int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 || frames < 0 {
		return nil, fmt.Errorf("%w: rate %d -> %d, frames %d", ErrResample, srcRate, dstRate, frames)
	}

	if frames == 0 || len(samples) == 0 {
		return make([]float32, frames), nil
	}

	converter := s.Converter
	if converter == 0 {
		converter = gosamplerate.SRC_SINC_BEST_QUALITY
	}

	ratio := float64(dstRate) / float64(srcRate)
	out, err := gosamplerate.Simple(samples, ratio, 1, converter)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return fitFrames(out, frames), nil
}
