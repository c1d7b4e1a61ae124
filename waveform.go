package wavecat

// Waveform is the canonical in-memory representation this package
// builds towards: an owned, contiguous block of interleaved f32
// samples, frame-major and channel-minor, plus the frame rate and
// channel count needed to interpret it. Once constructed a Waveform
// is immutable; transforms such as Resample return a new value rather
// than mutating the receiver.
type Waveform struct {
	frameRateHz uint32
	numChannels uint16
	samples     []float32 // len == numFrames * numChannels
}

// newWaveform assembles a Waveform from a pipeline's final interleaved
// buffer. It is unexported and does no checking of its own: each caller
// is responsible for passing a buffer whose length is a multiple of
// numChannels.
func newWaveform(frameRateHz uint32, numChannels uint16, samples []float32) *Waveform {
	return &Waveform{frameRateHz: frameRateHz, numChannels: numChannels, samples: samples}
}

// FrameRateHz returns the waveform's sample rate.
func (w *Waveform) FrameRateHz() uint32 { return w.frameRateHz }

// NumChannels returns the number of interleaved channels per frame.
func (w *Waveform) NumChannels() uint16 { return w.numChannels }

// NumFrames returns the number of frames in the waveform.
func (w *Waveform) NumFrames() uint64 {
	if w.numChannels == 0 {
		return 0
	}
	return uint64(len(w.samples)) / uint64(w.numChannels)
}

// GetSample returns the sample at (frame, channel) and true, or
// (0, false) when the index is out of range. It never fails: an
// out-of-bounds lookup is a normal query result, not an error.
func (w *Waveform) GetSample(frame uint64, channel uint16) (float32, bool) {
	if channel >= w.numChannels || frame >= w.NumFrames() {
		return 0, false
	}
	return w.samples[frame*uint64(w.numChannels)+uint64(channel)], true
}

// ToInterleavedSamples returns the waveform's underlying sample
// buffer. The returned slice aliases the Waveform's storage; callers
// that need to mutate it should copy first.
func (w *Waveform) ToInterleavedSamples() []float32 {
	return w.samples
}

// To2DArray exports the waveform as one slice per frame, each holding
// that frame's samples in channel order: shape (num_frames,
// num_channels), the layout batch callers and language bindings
// consume.
func (w *Waveform) To2DArray() [][]float32 {
	channels := int(w.numChannels)
	if channels == 0 {
		return nil
	}
	numFrames := int(w.NumFrames())

	out := make([][]float32, numFrames)
	for f := range out {
		base := f * channels
		row := make([]float32, channels)
		copy(row, w.samples[base:base+channels])
		out[f] = row
	}
	return out
}

// FromFramesOfSilence builds a waveform of numFrames all-zero frames.
func FromFramesOfSilence(frameRateHz uint32, numChannels uint16, numFrames uint64) *Waveform {
	return newWaveform(frameRateHz, numChannels, make([]float32, numFrames*uint64(numChannels)))
}

// FromMillisecondsOfSilence builds a waveform of silence spanning
// durationMs milliseconds at frameRateHz, rounding the frame count up
// so the waveform covers at least the requested duration.
func FromMillisecondsOfSilence(frameRateHz uint32, numChannels uint16, durationMs uint64) *Waveform {
	numFrames := (durationMs*uint64(frameRateHz) + 999) / 1000
	return FromFramesOfSilence(frameRateHz, numChannels, numFrames)
}

// FromInterleavedSamples wraps an existing interleaved f32 buffer as a
// Waveform. samples is taken as-is, with no check that its values lie
// in [-1, 1], and must have a length that is an exact multiple of
// numChannels.
func FromInterleavedSamples(frameRateHz uint32, numChannels uint16, samples []float32) (*Waveform, error) {
	if numChannels == 0 {
		return nil, newError(KindWrongNumChannels, "num_channels must be at least 1")
	}
	if len(samples)%int(numChannels) != 0 {
		return nil, newError(KindWrongNumChannels, "sample buffer length %d is not a multiple of num_channels %d", len(samples), numChannels)
	}
	return newWaveform(frameRateHz, numChannels, samples), nil
}

// From2DArray builds a Waveform from one slice per frame, shape
// (num_frames, num_channels), the inverse of To2DArray. Every frame
// row must have the same length.
func From2DArray(frameRateHz uint32, frames [][]float32) (*Waveform, error) {
	if len(frames) == 0 || len(frames[0]) == 0 {
		return nil, newError(KindWrongNumChannels, "num_channels must be at least 1")
	}
	numChannels := len(frames[0])
	for _, row := range frames {
		if len(row) != numChannels {
			return nil, newError(KindWrongNumChannels, "every frame must have the same number of channels")
		}
	}

	numFrames := len(frames)
	samples := make([]float32, numFrames*numChannels)
	for f, row := range frames {
		copy(samples[f*numChannels:(f+1)*numChannels], row)
	}
	return newWaveform(frameRateHz, uint16(numChannels), samples), nil
}
