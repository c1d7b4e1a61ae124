// Package resample implements sample-rate conversion for interleaved
// f32 PCM, pluggable by algorithm. Every mode is required to obey the
// same output-length law regardless of implementation, so
// OutputFrames is the single source of truth callers size buffers
// against.
package resample

import (
	"fmt"
	"math"
)

// Mode selects a resampling algorithm. The zero value is not a valid
// mode; callers must pick one explicitly (Waveform.Resample defaults
// to ModeSinc, see the root package).
type Mode int

const (
	// ModeLinear performs straight linear interpolation between the
	// two nearest source frames.
	ModeLinear Mode = iota + 1
	// ModeSinc is a windowed-sinc / polyphase filter, backed by
	// github.com/tphakala/go-audio-resampling.
	ModeSinc
	// ModeSoxHQ delegates to libsoxr via cgo when the repo is built
	// with the `soxr` build tag; it is unavailable otherwise.
	ModeSoxHQ
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeSinc:
		return "sinc"
	case ModeSoxHQ:
		return "sox_hq"
	default:
		return "unknown"
	}
}

// minRatio/maxRatio bound the frame-rate ratios every mode must
// support. A filter-design mode cannot usefully resample across a 0 or
// near-0 target, so both the explicit zero case and pathological
// ratios are rejected uniformly here rather than per-mode.
const (
	minSupportedRatio = 1.0 / 128.0
	maxSupportedRatio = 128.0
)

// SupportsRatio reports whether srcHz -> tgtHz falls within the ratio
// range every resample mode is required to support.
func SupportsRatio(srcHz, tgtHz uint32) bool {
	if srcHz == 0 || tgtHz == 0 {
		return false
	}
	ratio := float64(tgtHz) / float64(srcHz)
	return ratio >= minSupportedRatio && ratio <= maxSupportedRatio
}

// OutputFrames computes the number of output frames a resample to
// tgtHz must produce: round(srcFrames * tgtHz / srcHz), with
// half-to-even rounding so whole-number ratios never drift.
func OutputFrames(srcFrames int, srcHz, tgtHz uint32) int {
	return int(math.RoundToEven(float64(srcFrames) * float64(tgtHz) / float64(srcHz)))
}

// Resample converts interleaved f32 PCM at srcHz to tgtHz using mode.
// The returned buffer always has exactly OutputFrames(srcFrames, srcHz,
// tgtHz) frames, regardless of what the underlying algorithm natively
// produces: callers downstream (zero-pad, batch assembly) depend on
// that law holding exactly, not approximately.
func Resample(samples []float32, channels int, srcHz, tgtHz uint32, mode Mode) ([]float32, error) {
	if !SupportsRatio(srcHz, tgtHz) {
		return nil, fmt.Errorf("unsupported frame rate ratio %d -> %d", srcHz, tgtHz)
	}

	srcFrames := len(samples) / channels
	target := OutputFrames(srcFrames, srcHz, tgtHz)

	var out []float32
	var err error
	switch mode {
	case ModeLinear:
		out = resampleLinear(samples, channels, srcFrames, srcHz, tgtHz, target)
	case ModeSinc:
		out, err = resampleSinc(samples, channels, srcHz, tgtHz)
	case ModeSoxHQ:
		out, err = resampleSoxHQ(samples, channels, srcHz, tgtHz)
	default:
		return nil, fmt.Errorf("unknown resample mode %v", mode)
	}
	if err != nil {
		return nil, err
	}

	return fitToLength(out, channels, target), nil
}

// fitToLength truncates or zero-pads an interleaved buffer so it has
// exactly wantFrames frames, normalizing away any off-by-a-few-samples
// behavior a third-party filter implementation may have at its edges.
func fitToLength(samples []float32, channels, wantFrames int) []float32 {
	wantLen := wantFrames * channels
	if len(samples) == wantLen {
		return samples
	}
	out := make([]float32, wantLen)
	copy(out, samples)
	return out
}
