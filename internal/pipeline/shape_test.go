package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeChannelsNoop(t *testing.T) {
	samples := []float32{1, 2, 3, 4}
	out, channels := ShapeChannels(samples, 2, 0, false)
	assert.Equal(t, 2, channels)
	assert.Equal(t, samples, out)
}

func TestShapeChannelsDrop(t *testing.T) {
	// 3 channels, 2 frames: keep only the first 2 channels.
	samples := []float32{1, 2, 3, 4, 5, 6}
	out, channels := ShapeChannels(samples, 3, 2, false)
	assert.Equal(t, 2, channels)
	assert.Equal(t, []float32{1, 2, 4, 5}, out)
}

func TestShapeChannelsMono(t *testing.T) {
	samples := []float32{0, 1, 1, 1} // 2 frames, 2 channels
	out, channels := ShapeChannels(samples, 2, 0, true)
	assert.Equal(t, 1, channels)
	assert.Equal(t, []float32{0.5, 1}, out)
}

func TestShapeChannelsDropThenMono(t *testing.T) {
	// 3 channels, keep first 2, then mono-mix those 2.
	samples := []float32{0, 2, 100, 4, 6, 200}
	out, channels := ShapeChannels(samples, 3, 2, true)
	assert.Equal(t, 1, channels)
	assert.Equal(t, []float32{1, 5}, out)
}
