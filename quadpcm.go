// SPDX-License-Identifier: EPL-2.0

package quadpcm

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/quadpcm/audio"
	"github.com/ik5/quadpcm/pcm"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSampleRate = 44100
	DefaultBitDepth   = pcm.Depth16
)

// Options controls the output format. Zero values select the defaults.
type Options struct {
	SampleRate int
	BitDepth   pcm.BitDepth
}

func (o Options) withDefaults() Options {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.BitDepth == 0 {
		o.BitDepth = DefaultBitDepth
	}
	return o
}

// Result holds the four encoded channel blocks, ordered ch1..ch4.
type Result struct {
	SampleRate int
	BitDepth   pcm.BitDepth
	Frames     int
	Blocks     pcm.Quad
}

// Pipeline runs decode, resample, channel derivation and quantization.
// Nil fields fall back to the defaults used by NewPipeline.
type Pipeline struct {
	Decoder   Decoder
	Resampler audio.Resampler
	Logger    logrus.FieldLogger
}

// NewPipeline wires the file decoder over NewRegistry, the polyphase resampler
// and a logger that discards everything.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Decoder:   FileDecoder{Registry: NewRegistry(), DefaultFormat: DefaultFormat},
		Resampler: audio.PolyphaseResampler{},
		Logger:    discardLogger(),
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Process converts the file at path into four PCM blocks.
// Configuration is validated before the file is opened.
func (p *Pipeline) Process(ctx context.Context, path string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := opts.BitDepth.Validate(); err != nil {
		return nil, err
	}
	if opts.SampleRate < 0 {
		return nil, fmt.Errorf("%w: invalid target rate %d", audio.ErrResample, opts.SampleRate)
	}

	log := p.logger().WithField("path", path)

	buf, err := p.decoder().Decode(ctx, path)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"sample_rate": buf.SampleRate,
		"channels":    buf.NumChannels(),
		"frames":      buf.Frames(),
	}).Debug("decoded")

	resampled, err := audio.ResampleBuffer(ctx, p.resampler(), buf, opts.SampleRate)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"sample_rate": resampled.SampleRate,
		"frames":      resampled.Frames(),
	}).Debug("resampled")

	quad, err := audio.DeriveQuad(resampled)
	if err != nil {
		return nil, err
	}
	log.WithField("frames", quad.Frames()).Debug("derived 4 channels")

	blocks, err := pcm.EncodeQuad(ctx, quad, opts.BitDepth)
	if err != nil {
		return nil, err
	}
	log.WithField("bit_depth", int(opts.BitDepth)).Debug("encoded")

	return &Result{
		SampleRate: opts.SampleRate,
		BitDepth:   opts.BitDepth,
		Frames:     quad.Frames(),
		Blocks:     blocks,
	}, nil
}

func (p *Pipeline) decoder() Decoder {
	if p.Decoder != nil {
		return p.Decoder
	}
	return FileDecoder{Registry: NewRegistry(), DefaultFormat: DefaultFormat}
}

func (p *Pipeline) resampler() audio.Resampler {
	if p.Resampler != nil {
		return p.Resampler
	}
	return audio.PolyphaseResampler{}
}

func (p *Pipeline) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	return discardLogger()
}

// Process runs NewPipeline().Process.
func Process(ctx context.Context, path string, opts Options) (*Result, error) {
	return NewPipeline().Process(ctx, path, opts)
}
