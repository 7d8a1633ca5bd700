// SPDX-License-Identifier: EPL-2.0

package quadpcm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/quadpcm/formats/wav"
)

// Export writes one file per channel into dir, named name_ch1 .. name_ch4.
// Raw blocks get a .pcm extension; with asWAV each block is wrapped in a mono
// WAV container instead. It returns the paths written so far, even on error.
func (r *Result) Export(dir, name string, asWAV bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	ext := ".pcm"
	if asWAV {
		ext = ".wav"
	}

	paths := make([]string, 0, len(r.Blocks))
	for i, block := range r.Blocks {
		path := filepath.Join(dir, fmt.Sprintf("%s_ch%d%s", name, i+1, ext))

		var err error
		if asWAV {
			err = r.writeWAV(path, block)
		} else {
			err = os.WriteFile(path, block, 0o644)
		}
		if err != nil {
			return paths, fmt.Errorf("channel %d: %w", i+1, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func (r *Result) writeWAV(path string, block []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := wav.WriteWAV(w, r.SampleRate, r.BitDepth, block); err != nil {
		return err
	}

	return w.Flush()
}
