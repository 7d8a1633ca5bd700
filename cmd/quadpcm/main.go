// SPDX-License-Identifier: EPL-2.0

// Command quadpcm converts an audio file into four PCM channel blocks.
//
// Usage:
//
//	quadpcm <input.mp3>
//
// Settings come from the environment or a .env file: QUADPCM_SAMPLE_RATE,
// QUADPCM_BIT_DEPTH, QUADPCM_RESAMPLER, QUADPCM_OUTPUT_DIR, QUADPCM_WAV,
// QUADPCM_TIMEOUT and LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ik5/quadpcm"
	"github.com/ik5/quadpcm/audio"
	"github.com/ik5/quadpcm/internal/config"
	"github.com/ik5/quadpcm/internal/logging"
	"github.com/sirupsen/logrus"
)

const usage = "usage: quadpcm <input.mp3>"

var errUsage = errors.New(usage)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], cfg, os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usage)
		} else {
			logger.WithError(err).Error("Conversion failed")
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg *config.Config, stdout io.Writer, logger logrus.FieldLogger) error {
	if len(args) < 1 {
		return errUsage
	}
	inPath := args[0]

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	resampler, err := audio.ResamplerByName(cfg.Resampler)
	if err != nil {
		return err
	}

	p := quadpcm.NewPipeline()
	p.Resampler = resampler
	p.Logger = logger

	logger.WithFields(logrus.Fields{
		"input":       inPath,
		"sample_rate": cfg.SampleRate,
		"bit_depth":   int(cfg.BitDepth),
		"resampler":   cfg.Resampler,
	}).Info("Converting")

	res, err := p.Process(ctx, inPath, quadpcm.Options{
		SampleRate: cfg.SampleRate,
		BitDepth:   cfg.BitDepth,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Encoded 4 channels:")
	for i, block := range res.Blocks {
		fmt.Fprintf(stdout, "  Channel %d: %d bytes\n", i+1, len(block))
	}

	if cfg.OutputDir != "" {
		name := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
		paths, err := res.Export(cfg.OutputDir, name, cfg.WAV)
		if err != nil {
			return err
		}
		logger.WithField("files", paths).Info("Exported channels")
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Ready for Bluetooth transmission")

	return nil
}
