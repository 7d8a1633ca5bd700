// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav and accepts integer PCM at
// 16, 24 and 32 bits with any channel count and sample rate. Samples come
// out of the returned audio.Source as interleaved float32 values in [-1, 1).
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Writing WAV Files
//
// WriteWAV wraps one encoded PCM block (see package pcm) in a mono WAV
// container, so a single output channel can be inspected with regular
// audio tools:
//
//	block, _ := pcm.Encode(samples, pcm.Depth24)
//	err := wav.WriteWAV(file, 48000, pcm.Depth24, block)
//
// WriteWAV16 is a shortcut for int16 samples.
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no valid RIFF/WAVE header
//   - ErrNotPCM: the fmt chunk describes a compressed or float format
//   - ErrUnsupportedBitDepth: 8-bit or other unsupported sample widths
//
// # File Format
//
// Written files consist of a 44 byte header (RIFF, fmt and data chunk
// headers) followed by the PCM block and a pad byte when its length is odd.
package wav
