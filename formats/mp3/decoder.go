// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/quadpcm/audio"
)

// decodedChannels is what go-mp3 emits regardless of the stream's mode.
const decodedChannels = 2

// bytesPerFrame is one interleaved stereo int16 frame.
const bytesPerFrame = decodedChannels * 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	// channels is 1 for single-channel streams; go-mp3 duplicates those into
	// both stereo slots and only the left one is kept.
	channels int
	buf      []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerFrame * s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	frames := len(dst) / s.channels
	bytesNeeded := frames * bytesPerFrame
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.dec, s.buf)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		err = io.EOF
	default:
		return 0, fmt.Errorf("%w", err)
	}

	// a trailing partial frame is dropped
	frames = n / bytesPerFrame
	for f := range frames {
		for c := range s.channels {
			b := s.buf[f*bytesPerFrame+c*2:]
			val := int16(uint16(b[0]) | uint16(b[1])<<8)
			dst[f*s.channels+c] = float32(val) / audio.Int16Scale
		}
	}

	return frames * s.channels, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 data: %w", err)
	}

	dec, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   probeChannels(data),
		buf:        make([]byte, 8192),
	}, nil
}
