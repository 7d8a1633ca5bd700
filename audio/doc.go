// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks of the quad pipeline.
//
// This package contains:
//   - Source and Decoder interfaces for streamed input
//   - Registry for decoders keyed by file extension
//   - Buffer, a planar in-memory recording, and ReadAll to fill it
//   - Resampler, PolyphaseResampler, CubicResampler and ResampleBuffer for rate conversion
//   - DeriveQuad, mapping any channel layout onto four channels
//
// # Source Interface
//
// Decoders in formats/* return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer with one slice per channel:
//
//	buf, err := audio.ReadAll(ctx, src)
//
// # Resampling
//
// ResampleBuffer converts every channel independently to
// floor(frames * dstRate / srcRate) frames. Equal rates return the buffer
// untouched and non-positive rates fail with ErrResample:
//
//	out, err := audio.ResampleBuffer(ctx, audio.PolyphaseResampler{}, buf, 44100)
//
// PolyphaseResampler, the default, runs the pure Go soxr port from
// github.com/tphakala/go-audio-resampler and keeps the passband flat.
// CubicResampler is a lightweight alternative. Building with the samplerate
// tag adds SincResampler, backed by libsamplerate; ResamplerByName("sinc")
// returns it.
//
// # Channel Derivation
//
// DeriveQuad always returns four equal-length channels:
//
//	mono          -> M, M, M, M
//	stereo        -> L, R, 0.7*L, 0.7*R
//	4+ channels   -> first four, in order
//	3 channels    -> c0, c1, c2, c0
//
// A buffer without channels fails with ErrChannelDerivation.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]. 16-bit decoders divide by
// Int16Scale (32768). Values may exceed the range after processing; the pcm
// package normalizes before quantizing.
package audio
