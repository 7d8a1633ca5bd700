// SPDX-License-Identifier: EPL-2.0

// Package quadpcm converts an audio recording into four raw PCM channel
// blocks ready for a multi-channel transmitter.
//
// The conversion runs in four stages:
//
//  1. Decode the file (MP3, WAV, AIFF or Ogg Vorbis) into planar float32 samples
//  2. Resample every channel to the target rate
//  3. Derive exactly four output channels from the source channels
//  4. Quantize each channel to 16 or 24-bit little-endian signed PCM
//
// # Quick Start
//
//	res, err := quadpcm.Process(ctx, "song.mp3", quadpcm.Options{
//	    SampleRate: 48000,
//	    BitDepth:   pcm.Depth24,
//	})
//	if err != nil {
//	    // errors.Is(err, audio.ErrDecode), audio.ErrResample, ...
//	}
//	for i, block := range res.Blocks {
//	    fmt.Printf("channel %d: %d bytes\n", i+1, len(block))
//	}
//
// The zero Options selects 44100 Hz at 16 bits.
//
// # Channel Layout
//
// Mono input is copied to all four channels. Stereo input becomes
// [L, R, L*0.7, R*0.7]. Inputs with four or more channels keep the first
// four. Three channels wrap around, so channel 4 repeats channel 1.
//
// # Custom Pipelines
//
// Pipeline exposes each collaborator for replacement: any Decoder (for
// example one backed by a custom audio.Registry), any audio.Resampler
// (audio.ResamplerByName resolves "polyphase", the default, "cubic" and, when built with the
// samplerate tag, "sinc") and any logrus.FieldLogger.
//
//	p := quadpcm.NewPipeline()
//	p.Logger = logger
//	res, err := p.Process(ctx, path, opts)
//
// # Writing Results
//
// Result.Export writes name_ch1 .. name_ch4 as raw .pcm files, or as mono
// .wav files for inspection in regular audio tools.
package quadpcm
