// SPDX-License-Identifier: EPL-2.0

package quadpcm

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/quadpcm/audio"
	"github.com/ik5/quadpcm/formats/wav"
	"github.com/ik5/quadpcm/pcm"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// stubDecoder returns a fixed buffer and counts calls.
type stubDecoder struct {
	buf   *audio.Buffer
	err   error
	calls int
}

func (s *stubDecoder) Decode(context.Context, string) (*audio.Buffer, error) {
	s.calls++
	return s.buf, s.err
}

type failingResampler struct{ err error }

func (f failingResampler) Resample([]float32, int, int, int) ([]float32, error) {
	return nil, f.err
}

func writeMonoWAV(t *testing.T, path string, rate int, samples []int16) {
	t.Helper()

	var data bytes.Buffer
	if err := wav.WriteWAV16(&data, rate, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if err := os.WriteFile(path, data.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func constant(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestProcess_WAVEndToEnd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.wav")
	writeMonoWAV(t, path, 8000, constant(8000, 16384))

	res, err := Process(t.Context(), path, Options{SampleRate: 16000, BitDepth: pcm.Depth24})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if res.SampleRate != 16000 || res.BitDepth != pcm.Depth24 {
		t.Errorf("result format = %d Hz / %d bit", res.SampleRate, res.BitDepth)
	}
	if res.Frames != 16000 {
		t.Fatalf("Frames = %d, want 16000", res.Frames)
	}

	for i, block := range res.Blocks {
		if len(block) != 16000*3 {
			t.Fatalf("block %d length = %d, want %d", i, len(block), 16000*3)
		}
		if !bytes.Equal(block, res.Blocks[0]) {
			t.Errorf("block %d differs from block 0 for mono input", i)
		}
	}

	samples, err := pcm.Decode(res.Blocks[0], pcm.Depth24)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// 0.5 full scale, away from the filter edges
	for i := len(samples) / 10; i < len(samples)*9/10; i++ {
		if d := samples[i] - 4194304; d < -83886 || d > 83886 {
			t.Fatalf("sample %d = %d, want about 4194304", i, samples[i])
		}
	}
}

func TestProcess_NoExtensionUsesDefaultFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "recording")
	writeMonoWAV(t, path, 44100, constant(441, 0))

	p := NewPipeline()
	p.Decoder = FileDecoder{Registry: NewRegistry(), DefaultFormat: "wav"}

	res, err := p.Process(t.Context(), path, Options{})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if res.Frames != 441 {
		t.Errorf("Frames = %d, want 441", res.Frames)
	}
	if res.SampleRate != DefaultSampleRate || res.BitDepth != DefaultBitDepth {
		t.Errorf("defaults = %d Hz / %d bit", res.SampleRate, res.BitDepth)
	}
}

func TestProcess_DecodeErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.wav")
	if err := os.WriteFile(corrupt, []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	canceled, cancel := context.WithCancel(t.Context())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		path  string
		cause error
	}{
		{"missing file", t.Context(), filepath.Join(dir, "missing.mp3"), os.ErrNotExist},
		{"unsupported extension", t.Context(), filepath.Join(dir, "song.flac"), audio.ErrUnsupportedFormat},
		{"corrupt wav", t.Context(), corrupt, wav.ErrNotWavFile},
		{"canceled", canceled, corrupt, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Process(tt.ctx, tt.path, Options{})
			if !errors.Is(err, audio.ErrDecode) {
				t.Errorf("Process() error = %v, want %v", err, audio.ErrDecode)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Process() error = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestProcess_ValidatesBeforeDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"8-bit", Options{BitDepth: 8}, pcm.ErrUnsupportedBitDepth},
		{"32-bit", Options{BitDepth: 32}, pcm.ErrUnsupportedBitDepth},
		{"negative rate", Options{SampleRate: -1}, audio.ErrResample},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &stubDecoder{}
			p := &Pipeline{Decoder: dec}

			_, err := p.Process(t.Context(), "unused.mp3", tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Process() error = %v, want %v", err, tt.wantErr)
			}
			if dec.calls != 0 {
				t.Errorf("decoder called %d times, want 0", dec.calls)
			}
		})
	}
}

func TestProcess_StereoReference(t *testing.T) {
	t.Parallel()

	p := &Pipeline{Decoder: &stubDecoder{buf: &audio.Buffer{
		SampleRate: 44100,
		Channels:   [][]float32{{1.0}, {-1.0}},
	}}}

	res, err := p.Process(t.Context(), "stereo.mp3", Options{SampleRate: 44100, BitDepth: pcm.Depth16})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !bytes.Equal(res.Blocks[0], []byte{0xFF, 0x7F}) {
		t.Errorf("ch1 = % X, want FF 7F", res.Blocks[0])
	}
	if !bytes.Equal(res.Blocks[1], []byte{0x00, 0x80}) {
		t.Errorf("ch2 = % X, want 00 80", res.Blocks[1])
	}

	rear := []int32{22937, -22938}
	for i, want := range rear {
		got, err := pcm.Decode(res.Blocks[2+i], pcm.Depth16)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if got[0] != want {
			t.Errorf("ch%d = %d, want %d", 3+i, got[0], want)
		}
	}
}

func TestProcess_ChannelLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels [][]float32
		want     [4]float32
	}{
		{"mono", [][]float32{{0.5, 0.5}}, [4]float32{0.5, 0.5, 0.5, 0.5}},
		{"three wraps", [][]float32{{0.1, 0.1}, {0.2, 0.2}, {0.3, 0.3}}, [4]float32{0.1, 0.2, 0.3, 0.1}},
		{"six keeps first four", [][]float32{{0.1}, {0.2}, {0.3}, {0.4}, {0.5}, {0.6}}, [4]float32{0.1, 0.2, 0.3, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Pipeline{Decoder: &stubDecoder{buf: &audio.Buffer{SampleRate: 48000, Channels: tt.channels}}}

			res, err := p.Process(t.Context(), "x.mp3", Options{SampleRate: 48000})
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}

			for i, block := range res.Blocks {
				want, _ := pcm.Encode([]float32{tt.want[i]}, pcm.Depth16)
				if !bytes.Equal(block[:2], want) {
					t.Errorf("ch%d first sample = % X, want % X", i+1, block[:2], want)
				}
				if len(block) != res.Frames*2 {
					t.Errorf("ch%d length = %d, want %d", i+1, len(block), res.Frames*2)
				}
			}
		})
	}
}

func TestNewPipeline_DefaultResampler(t *testing.T) {
	t.Parallel()

	if _, ok := NewPipeline().Resampler.(audio.PolyphaseResampler); !ok {
		t.Errorf("NewPipeline().Resampler = %T, want audio.PolyphaseResampler", NewPipeline().Resampler)
	}
	if _, ok := (&Pipeline{}).resampler().(audio.PolyphaseResampler); !ok {
		t.Errorf("zero Pipeline resampler = %T, want audio.PolyphaseResampler", (&Pipeline{}).resampler())
	}
}

func TestProcess_StageErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name    string
		p       *Pipeline
		wantErr error
	}{
		{
			name:    "decoder error passes through",
			p:       &Pipeline{Decoder: &stubDecoder{err: boom}},
			wantErr: boom,
		},
		{
			name: "resampler error",
			p: &Pipeline{
				Decoder:   &stubDecoder{buf: &audio.Buffer{SampleRate: 8000, Channels: [][]float32{{0}}}},
				Resampler: failingResampler{err: boom},
			},
			wantErr: audio.ErrResample,
		},
		{
			name:    "zero channels",
			p:       &Pipeline{Decoder: &stubDecoder{buf: &audio.Buffer{SampleRate: 44100}}},
			wantErr: audio.ErrChannelDerivation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := tt.p.Process(t.Context(), "x.mp3", Options{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("Process() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProcess_LogsStages(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p := &Pipeline{
		Decoder:   &stubDecoder{buf: &audio.Buffer{SampleRate: 22050, Channels: [][]float32{{0, 0}, {0, 0}}}},
		Resampler: audio.CubicResampler{},
		Logger:    logger,
	}

	if _, err := p.Process(t.Context(), "song.mp3", Options{}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("logged %d entries, want 4", len(entries))
	}
	for _, e := range entries {
		if e.Level != logrus.DebugLevel {
			t.Errorf("entry %q level = %v, want debug", e.Message, e.Level)
		}
		if e.Data["path"] != "song.mp3" {
			t.Errorf("entry %q path = %v, want song.mp3", e.Message, e.Data["path"])
		}
	}
	if entries[0].Data["channels"] != 2 {
		t.Errorf("decoded channels field = %v, want 2", entries[0].Data["channels"])
	}
}
