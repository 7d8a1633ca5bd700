// SPDX-License-Identifier: EPL-2.0

// Package pcm quantizes float32 channels into raw little-endian PCM blocks.
//
// Two depths are supported: Depth16 (2 bytes per sample) and Depth24
// (3 bytes per sample, the low three bytes of a little-endian int32).
// Any other depth fails with ErrUnsupportedBitDepth.
//
// Encode works on one channel:
//
//	block, err := pcm.Encode(samples, pcm.Depth16)
//
// If the channel peaks above 1.0 it is first divided by its peak, so the
// output never wraps. Normalization is per channel. Positive samples scale by
// MaxInt16/MaxInt24 and negative samples by the magnitude of MinInt16/MinInt24,
// then round to nearest:
//
//	 1.0 -> 32767  (FF 7F)
//	-1.0 -> -32768 (00 80)
//
// No dithering or noise shaping is applied.
//
// EncodeQuad encodes the four channels of a quad in parallel and keeps
// their order. Decode reverses the packing, which is handy for writing WAV
// files or inspecting output.
package pcm
