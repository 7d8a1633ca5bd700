// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests.
// Sources satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	bufSize    int
	waveform   func(frame int, channel int) float32

	// ReadErr, when set, is returned once the frames are exhausted instead of io.EOF.
	ReadErr error
	// Closed reports whether Close was called.
	Closed bool
}

// NewMockSource creates a source of frames frames.
// waveform returns the sample for a frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		bufSize:    4096,
		waveform:   waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewPlanarSource plays back the given planar channels.
// All channels must share the same length.
func NewPlanarSource(sampleRate int, channels ...[]float32) *MockSource {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	return NewMockSource(sampleRate, len(channels), frames, func(frame int, channel int) float32 {
		return channels[channel][frame]
	})
}

// WithBufSize overrides the value reported by BufSize.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, m.endErr()
	}

	framesToWrite := min(len(dst)/m.channels, m.frames-m.generated)

	for frame := range framesToWrite {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.frames {
		return written, m.endErr()
	}

	return written, nil
}

func (m *MockSource) endErr() error {
	if m.ReadErr != nil {
		return m.ReadErr
	}
	return io.EOF
}

// StalledSource never produces data and never reaches EOF.
type StalledSource struct{}

func (StalledSource) SampleRate() int                 { return 8000 }
func (StalledSource) Channels() int                   { return 1 }
func (StalledSource) BufSize() int                    { return 64 }
func (StalledSource) Close() error                    { return nil }
func (StalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
