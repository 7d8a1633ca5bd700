// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// DefaultResampler names the resampler used when none is configured.
const DefaultResampler = "polyphase"

// Resampler converts one channel from srcRate to dstRate and returns exactly
// frames samples.
type Resampler interface {
	Resample(samples []float32, srcRate, dstRate, frames int) ([]float32, error)
}

// TargetFrames is floor(frames * dstRate / srcRate).
func TargetFrames(frames, srcRate, dstRate int) int {
	return int(int64(frames) * int64(dstRate) / int64(srcRate))
}

// ResampleBuffer resamples every channel of buf to dstRate.
// When the rates already match buf is returned as is.
func ResampleBuffer(ctx context.Context, r Resampler, buf *Buffer, dstRate int) (*Buffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrResample)
	}
	if buf.SampleRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: invalid rate %d -> %d", ErrResample, buf.SampleRate, dstRate)
	}

	if buf.SampleRate == dstRate {
		return buf, nil
	}

	frames := TargetFrames(buf.Frames(), buf.SampleRate, dstRate)
	out := &Buffer{
		SampleRate: dstRate,
		Channels:   make([][]float32, len(buf.Channels)),
	}

	for c, ch := range buf.Channels {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResample, err)
		}

		res, err := r.Resample(ch[:buf.Frames()], buf.SampleRate, dstRate, frames)
		if err != nil {
			return nil, fmt.Errorf("%w: channel %d: %w", ErrResample, c, err)
		}
		out.Channels[c] = res
	}

	return out, nil
}

// CubicResampler uses Catmull-Rom interpolation with a one-pole low-pass
// when downsampling. It is cheap but rolls off the upper band; use it for
// speech or previews.
type CubicResampler struct {
	// DisableFilter turns off the one-pole low-pass applied when downsampling.
	DisableFilter bool
}

const filterAlpha float32 = 0.5

func (c CubicResampler) Resample(samples []float32, srcRate, _, frames int) ([]float32, error) {
	if srcRate <= 0 || frames < 0 {
		return nil, fmt.Errorf("%w: rate %d, frames %d", ErrResample, srcRate, frames)
	}

	out := make([]float32, frames)
	if frames == 0 || len(samples) == 0 {
		return out, nil
	}

	// source samples per output sample
	ratio := float64(len(samples)) / float64(frames)

	in := samples
	if ratio > 1.0 && !c.DisableFilter {
		in = lowPass(samples, filterAlpha)
	}

	last := len(in) - 1
	at := func(i int) float32 {
		return in[max(0, min(i, last))]
	}

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		x := float32(pos - float64(idx))

		out[i] = cubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), x)
	}

	return out, nil
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0]
// to avoid a warm-up transient.
func lowPass(in []float32, alpha float32) []float32 {
	out := make([]float32, len(in))
	state := in[0]
	for i, x := range in {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}
	return out
}

// cubicInterpolate performs Catmull-Rom spline interpolation.
// x is the fractional position between y1 and y2 (0 <= x <= 1).
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

var (
	resamplersMtx sync.Mutex
	resamplers    = map[string]func() Resampler{
		"cubic":           func() Resampler { return CubicResampler{} },
		DefaultResampler: func() Resampler { return PolyphaseResampler{} },
	}
)

func registerResampler(name string, fn func() Resampler) {
	resamplersMtx.Lock()
	defer resamplersMtx.Unlock()

	resamplers[name] = fn
}

// ResamplerByName returns a named resampler: "polyphase", "cubic", or "sinc"
// when built with the samplerate tag.
func ResamplerByName(name string) (Resampler, error) {
	resamplersMtx.Lock()
	defer resamplersMtx.Unlock()

	fn, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, name)
	}
	return fn(), nil
}

// Resamplers lists the available resampler names, sorted.
func Resamplers() []string {
	resamplersMtx.Lock()
	defer resamplersMtx.Unlock()

	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
