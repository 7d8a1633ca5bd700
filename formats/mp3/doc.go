// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always produces interleaved stereo int16, even for single-channel
// streams. Before decoding, the first MPEG frame header (after an optional
// ID3v2 tag) is inspected; when its channel mode is mono, the Source reports
// one channel and yields only the left samples so mono input stays mono.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf, err := audio.ReadAll(ctx, source)
//
// Samples are int16 values divided by audio.Int16Scale, so they fall in
// [-1, 1).
//
// # Limitations
//
//   - Decoding only; there is no MP3 encoder
//   - The whole input is read into memory before decoding starts
//   - The channel mode of the first frame applies to the whole stream
package mp3
