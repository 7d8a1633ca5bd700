// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/quadpcm/pcm"
)

const headerSize = 44

// WriteWAV writes a mono PCM WAV at sampleRate whose data chunk is block,
// a little-endian PCM block of the given depth as produced by pcm.Encode.
func WriteWAV(w io.Writer, sampleRate int, depth pcm.BitDepth, block []byte) error {
	if err := depth.Validate(); err != nil {
		return err
	}
	if len(block)%depth.BytesPerSample() != 0 {
		return fmt.Errorf("%w: %d bytes", pcm.ErrTruncatedBlock, len(block))
	}

	numChannels := uint16(1)
	bitsPerSample := uint16(depth)
	blockAlign := numChannels * uint16(depth.BytesPerSample())
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(len(block))

	// RIFF chunks are word aligned
	pad := dataSize % 2
	riffSize := 36 + dataSize + pad

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("%w", err)
	}

	if pad != 0 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	block := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(block[i*2:], uint16(s))
	}

	return WriteWAV(w, sampleRate, pcm.Depth16, block)
}
