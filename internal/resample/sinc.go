package resample

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// resampleSinc runs a full interleaved buffer through a single
// high-quality resampling.Resampler, the same pure-Go windowed-sinc
// library used for streaming conversion in the pack's
// go/pkg/audio/resampler package. Offline decoding hands the whole
// buffer to Process in one call rather than chunking through an
// io.Reader, since the entire source is already in memory.
func resampleSinc(samples []float32, channels int, srcHz, tgtHz uint32) ([]float32, error) {
	cfg := &resampling.Config{
		InputRate:  float64(srcHz),
		OutputRate: float64(tgtHz),
		Channels:   channels,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}

	r, err := resampling.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create sinc resampler: %w", err)
	}

	input := make([]float64, len(samples))
	for i, s := range samples {
		input[i] = float64(s)
	}

	output, err := r.Process(input)
	if err != nil {
		return nil, fmt.Errorf("sinc resample: %w", err)
	}

	out := make([]float32, len(output))
	for i, s := range output {
		out[i] = float32(s)
	}
	return out, nil
}
