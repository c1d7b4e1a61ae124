package wavecat

import "github.com/wavecat/wavecat/internal/resample"

// Resample converts the waveform to targetHz using the
// package-default quality mode (DefaultResampleMode).
func (w *Waveform) Resample(targetHz uint32) (*Waveform, error) {
	return w.ResampleByMode(targetHz, DefaultResampleMode)
}

// ResampleByMode converts the waveform to targetHz using an explicit
// algorithm. The returned waveform always has exactly
// round(NumFrames * targetHz / FrameRateHz) frames (half-to-even), per
// the output-length law every mode is required to obey.
func (w *Waveform) ResampleByMode(targetHz uint32, mode ResampleMode) (*Waveform, error) {
	if !resample.SupportsRatio(w.frameRateHz, targetHz) {
		return nil, newError(KindWrongFrameRateRatio, "frame_rate_hz %d is outside the supported ratio range for source rate %d", targetHz, w.frameRateHz)
	}
	if targetHz == w.frameRateHz {
		out := make([]float32, len(w.samples))
		copy(out, w.samples)
		return newWaveform(w.frameRateHz, w.numChannels, out), nil
	}

	samples, err := resample.Resample(w.samples, int(w.numChannels), w.frameRateHz, targetHz, mode)
	if err != nil {
		return nil, wrapError(KindDecodingError, err)
	}
	return newWaveform(targetHz, w.numChannels, samples), nil
}
