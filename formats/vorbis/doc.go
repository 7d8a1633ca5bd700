// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via github.com/jfreymuth/oggvorbis.
//
// The decoder returns float32 samples directly, so no integer scaling is
// involved. Every read returns a whole number of interleaved frames; a
// destination smaller than one frame fails with audio.ErrInvalidDstSize.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// Malformed streams return the library error wrapped.
package vorbis
