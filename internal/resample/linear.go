package resample

// resampleLinear samples the source at position p = i * srcHz / tgtHz
// for each output frame i and linearly interpolates between the two
// surrounding source frames, per channel.
func resampleLinear(samples []float32, channels, srcFrames int, srcHz, tgtHz uint32, targetFrames int) []float32 {
	out := make([]float32, targetFrames*channels)
	if srcFrames == 0 {
		return out
	}

	ratio := float64(srcHz) / float64(tgtHz)
	lastFrame := srcFrames - 1

	for i := 0; i < targetFrames; i++ {
		p := float64(i) * ratio
		lo := int(p)
		if lo > lastFrame {
			lo = lastFrame
		}
		hi := lo + 1
		if hi > lastFrame {
			hi = lastFrame
		}
		frac := float32(p - float64(lo))

		loBase := lo * channels
		hiBase := hi * channels
		outBase := i * channels
		for c := 0; c < channels; c++ {
			a := samples[loBase+c]
			b := samples[hiBase+c]
			out[outBase+c] = a + (b-a)*frac
		}
	}

	return out
}
