// SPDX-License-Identifier: EPL-2.0

package mp3

// go-mp3 always decodes to stereo, so the channel mode is read from the
// first MPEG audio frame header instead.

const (
	id3v2HeaderSize = 10
	channelModeMono = 3
)

// frameHeader is the subset of an MPEG audio frame header we care about.
type frameHeader struct {
	version     byte // 0 = MPEG 2.5, 2 = MPEG 2, 3 = MPEG 1
	layer       byte // 1 = III, 2 = II, 3 = I
	channelMode byte
}

func (h frameHeader) channels() int {
	if h.channelMode == channelModeMono {
		return 1
	}
	return 2
}

func parseFrameHeader(b []byte) (frameHeader, bool) {
	if len(b) < 4 || b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return frameHeader{}, false
	}

	h := frameHeader{
		version:     (b[1] >> 3) & 0x03,
		layer:       (b[1] >> 1) & 0x03,
		channelMode: b[3] >> 6,
	}
	bitrate := b[2] >> 4
	rate := (b[2] >> 2) & 0x03

	// reserved values, and free-format bitrate which go-mp3 cannot decode
	if h.version == 1 || h.layer == 0 || bitrate == 0 || bitrate == 0x0F || rate == 0x03 {
		return frameHeader{}, false
	}

	return h, true
}

// skipID3v2 returns the offset just past a leading ID3v2 tag, or 0.
func skipID3v2(data []byte) int {
	if len(data) < id3v2HeaderSize || string(data[:3]) != "ID3" {
		return 0
	}

	// syncsafe integer: 7 bits per byte
	size := int(data[6]&0x7F)<<21 | int(data[7]&0x7F)<<14 | int(data[8]&0x7F)<<7 | int(data[9]&0x7F)
	end := id3v2HeaderSize + size
	if data[5]&0x10 != 0 { // footer present
		end += id3v2HeaderSize
	}

	return min(end, len(data))
}

// probeChannels finds the first frame header in data and returns its channel
// count. Streams without a recognizable header report 2, matching go-mp3.
func probeChannels(data []byte) int {
	for i := skipID3v2(data); i+4 <= len(data); i++ {
		if h, ok := parseFrameHeader(data[i : i+4]); ok {
			return h.channels()
		}
	}
	return 2
}
