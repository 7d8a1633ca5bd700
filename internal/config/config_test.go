// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/quadpcm/audio"
	"github.com/ik5/quadpcm/pcm"
)

func lookupMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(lookupMap(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if *cfg != Defaults() {
		t.Errorf("FromEnv() = %+v, want %+v", *cfg, Defaults())
	}
	if cfg.Resampler != audio.DefaultResampler {
		t.Errorf("default resampler = %q, want %q", cfg.Resampler, audio.DefaultResampler)
	}
}

func TestFromEnv_Values(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(lookupMap(map[string]string{
		"QUADPCM_SAMPLE_RATE": "48000",
		"QUADPCM_BIT_DEPTH":   "24",
		"QUADPCM_RESAMPLER":   "cubic",
		"QUADPCM_OUTPUT_DIR":  "/tmp/out",
		"QUADPCM_WAV":         "true",
		"QUADPCM_TIMEOUT":     "90s",
		"LOG_LEVEL":           "debug",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	want := Config{
		SampleRate: 48000,
		BitDepth:   pcm.Depth24,
		Resampler:  "cubic",
		OutputDir:  "/tmp/out",
		WAV:        true,
		Timeout:    90 * time.Second,
		LogLevel:   "debug",
	}
	if *cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", *cfg, want)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
		cause error
	}{
		{"rate not a number", "QUADPCM_SAMPLE_RATE", "fast", nil},
		{"rate zero", "QUADPCM_SAMPLE_RATE", "0", nil},
		{"depth not a number", "QUADPCM_BIT_DEPTH", "sixteen", nil},
		{"depth 8", "QUADPCM_BIT_DEPTH", "8", pcm.ErrUnsupportedBitDepth},
		{"depth 32", "QUADPCM_BIT_DEPTH", "32", pcm.ErrUnsupportedBitDepth},
		{"unknown resampler", "QUADPCM_RESAMPLER", "linear", audio.ErrUnknownResampler},
		{"wav flag", "QUADPCM_WAV", "maybe", nil},
		{"timeout", "QUADPCM_TIMEOUT", "soon", nil},
		{"negative timeout", "QUADPCM_TIMEOUT", "-1s", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromEnv(lookupMap(map[string]string{tt.key: tt.value}))
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("FromEnv() error = %v, want %v", err, ErrInvalidValue)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("FromEnv() error = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestFromEnv_EmptyValuesKeepDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(lookupMap(map[string]string{
		"QUADPCM_RESAMPLER": "",
		"QUADPCM_WAV":       "",
		"QUADPCM_TIMEOUT":   "",
		"LOG_LEVEL":         "",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if *cfg != Defaults() {
		t.Errorf("FromEnv() = %+v, want %+v", *cfg, Defaults())
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("QUADPCM_SAMPLE_RATE", "16000")
	t.Setenv("QUADPCM_BIT_DEPTH", "24")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SampleRate != 16000 || cfg.BitDepth != pcm.Depth24 {
		t.Errorf("Load() = %d Hz / %d bit, want 16000 Hz / 24 bit", cfg.SampleRate, cfg.BitDepth)
	}
}
