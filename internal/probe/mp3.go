package probe

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// mp3Codec decodes MPEG audio layer 3 using github.com/hajimehoshi/go-mp3,
// which always outputs 16-bit little-endian stereo PCM regardless of
// the source channel layout.
func mp3Codec() Codec {
	return Codec{
		Name:   "mp3",
		Sniff:  sniffMP3,
		Decode: decodeMP3,
	}
}

func sniffMP3(head []byte) bool {
	if len(head) >= 3 && head[0] == 'I' && head[1] == 'D' && head[2] == '3' {
		return true
	}
	// A raw MPEG frame sync: 11 set bits, i.e. 0xFFE. Layer/bitrate are
	// not checked here; go-mp3 itself rejects anything it cannot parse.
	return len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0
}

func decodeMP3(r io.ReadSeeker) (*Decoded, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("open mp3 stream: %w", err)
	}

	const channels = 2
	frame := make([]byte, 4096)
	samples := make([]float32, 0, int(dec.Length())/2)

	for {
		n, err := dec.Read(frame)
		if n > 0 {
			for i := 0; i+1 < n; i += 2 {
				v := int16(frame[i]) | int16(frame[i+1])<<8
				samples = append(samples, float32(v)/32768.0)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode mp3 frame: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &Decoded{
		Format:  SourceFormat{FrameRateHz: dec.SampleRate(), NumChannels: channels},
		Samples: samples,
	}, nil
}
