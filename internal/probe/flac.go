package probe

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// flacCodec decodes FLAC using github.com/mewkiz/flac. It decodes
// straight through in a single forward pass rather than retaining
// parsed frames for later seeking, since a one-shot decode only ever
// needs one pass over an input.
func flacCodec() Codec {
	return Codec{
		Name:   "flac",
		Sniff:  sniffFLAC,
		Decode: decodeFLAC,
	}
}

func sniffFLAC(head []byte) bool {
	return len(head) >= 4 && string(head[:4]) == "fLaC"
}

func decodeFLAC(r io.ReadSeeker) (*Decoded, error) {
	stream, err := flac.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse flac stream: %w", err)
	}

	channels := int(stream.Info.NChannels)
	fullScale := float32(int64(1) << (stream.Info.BitsPerSample - 1))
	samples := make([]float32, 0, stream.Info.NSamples*uint64(channels))

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse flac frame: %w", err)
		}

		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				samples = append(samples, float32(frame.Subframes[ch].Samples[i])/fullScale)
			}
		}
	}

	return &Decoded{
		Format:  SourceFormat{FrameRateHz: int(stream.Info.SampleRate), NumChannels: channels},
		Samples: samples,
	}, nil
}
