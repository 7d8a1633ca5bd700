// SPDX-License-Identifier: EPL-2.0

// Package config reads quadpcm settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ik5/quadpcm/audio"
	"github.com/ik5/quadpcm/pcm"
	"github.com/joho/godotenv"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds all configuration for the CLI
type Config struct {
	SampleRate int
	BitDepth   pcm.BitDepth
	Resampler  string
	OutputDir  string
	WAV        bool
	Timeout    time.Duration
	LogLevel   string
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		SampleRate: 44100,
		BitDepth:   pcm.Depth16,
		Resampler:  audio.DefaultResampler,
		LogLevel:   "info",
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, typically os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Defaults()

	if v, ok := lookup("QUADPCM_SAMPLE_RATE"); ok {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("%w: QUADPCM_SAMPLE_RATE=%q", ErrInvalidValue, v)
		}
		cfg.SampleRate = rate
	}

	if v, ok := lookup("QUADPCM_BIT_DEPTH"); ok {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: QUADPCM_BIT_DEPTH=%q", ErrInvalidValue, v)
		}
		cfg.BitDepth = pcm.BitDepth(depth)
		if err := cfg.BitDepth.Validate(); err != nil {
			return nil, fmt.Errorf("%w: QUADPCM_BIT_DEPTH: %w", ErrInvalidValue, err)
		}
	}

	if v, ok := lookup("QUADPCM_RESAMPLER"); ok && v != "" {
		if _, err := audio.ResamplerByName(v); err != nil {
			return nil, fmt.Errorf("%w: QUADPCM_RESAMPLER: %w", ErrInvalidValue, err)
		}
		cfg.Resampler = v
	}

	cfg.OutputDir, _ = lookup("QUADPCM_OUTPUT_DIR")

	if v, ok := lookup("QUADPCM_WAV"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: QUADPCM_WAV=%q", ErrInvalidValue, v)
		}
		cfg.WAV = b
	}

	if v, ok := lookup("QUADPCM_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: QUADPCM_TIMEOUT=%q", ErrInvalidValue, v)
		}
		cfg.Timeout = d
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	return &cfg, nil
}
