package probe

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// wavCodec decodes PCM WAV using github.com/go-audio/wav (the
// upstream of other_examples/2607e54f_CWBudde-wav__decoder.go.go,
// which the pack shows forked for extra chunk support this pipeline
// does not need).
func wavCodec() Codec {
	return Codec{
		Name:   "wav",
		Sniff:  sniffWAV,
		Decode: decodeWAV,
	}
}

func sniffWAV(head []byte) bool {
	return len(head) >= 12 && string(head[0:4]) == "RIFF" && string(head[8:12]) == "WAVE"
}

func decodeWAV(r io.ReadSeeker) (*Decoded, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read wav pcm data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth == 0 {
		bitDepth = 16
	}
	fullScale := float32(int64(1) << uint(bitDepth-1))

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / fullScale
	}

	return &Decoded{
		Format:  SourceFormat{FrameRateHz: int(dec.SampleRate), NumChannels: int(dec.NumChans)},
		Samples: samples,
	}, nil
}
