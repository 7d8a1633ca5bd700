// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Signed PCM at 8, 16, 24 and 32 bits is accepted with any channel count and
// sample rate. The returned audio.Source yields interleaved float32 samples
// in [-1, 1).
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Inputs that are not an io.ReadSeeker are buffered in memory first, since
// the go-audio parser seeks between chunks.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input has no FORM/AIFF header
//   - ErrUnsupportedBitDepth: the COMM chunk declares an unsupported width
//   - ErrUnsupportedAiffLayout: no usable format or channel layout
package aiff
