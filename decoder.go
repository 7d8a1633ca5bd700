// SPDX-License-Identifier: EPL-2.0

package quadpcm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/quadpcm/audio"
	"github.com/ik5/quadpcm/formats/aiff"
	"github.com/ik5/quadpcm/formats/mp3"
	"github.com/ik5/quadpcm/formats/vorbis"
	"github.com/ik5/quadpcm/formats/wav"
)

// DefaultFormat is used for paths without an extension.
const DefaultFormat = "mp3"

// Decoder turns an audio file into a planar float buffer.
type Decoder interface {
	Decode(ctx context.Context, path string) (*audio.Buffer, error)
}

// NewRegistry returns a registry with every built-in stream decoder.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("mp3", mp3.Decoder{})
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

// FileDecoder picks a stream decoder by file extension and reads the whole
// file into memory. Every failure is reported as audio.ErrDecode.
type FileDecoder struct {
	Registry      *audio.Registry
	DefaultFormat string
}

func (d FileDecoder) Decode(ctx context.Context, path string) (*audio.Buffer, error) {
	buf, err := d.decode(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, path, err)
	}

	return buf, nil
}

func (d FileDecoder) decode(ctx context.Context, path string) (*audio.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	format := d.format(path)

	registry := d.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	dec, ok := registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return audio.ReadAll(ctx, src)
}

func (d FileDecoder) format(path string) string {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format != "" {
		return format
	}
	if d.DefaultFormat != "" {
		return d.DefaultFormat
	}
	return DefaultFormat
}
