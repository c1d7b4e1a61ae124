package pipeline

import "math"

// Slice trims an interleaved buffer to a time window at the source
// frame rate. startMs/endMs are milliseconds
// (endMs == 0 means "to the end"); when zeroPad is true and the
// decoded span is shorter than the requested window, the result is
// padded with silence to exactly match it. Slicing always happens at
// srcRateHz, before any resampling.
func Slice(samples []float32, channels int, srcRateHz uint32, startMs, endMs uint64, zeroPad bool) []float32 {
	numFrames := len(samples) / channels

	startFrame := int(math.Round(float64(startMs) * float64(srcRateHz) / 1000.0))
	if startFrame > numFrames {
		startFrame = numFrames
	}

	endFrame := numFrames
	if endMs != 0 {
		endFrame = int(math.Round(float64(endMs) * float64(srcRateHz) / 1000.0))
	}

	available := endFrame
	if available > numFrames {
		available = numFrames
	}
	if available < startFrame {
		available = startFrame
	}

	out := make([]float32, (available-startFrame)*channels)
	copy(out, samples[startFrame*channels:available*channels])

	if zeroPad && endFrame > available {
		padded := make([]float32, (endFrame-startFrame)*channels)
		copy(padded, out)
		return padded
	}

	return out
}
