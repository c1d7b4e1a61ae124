package wavecat

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal canonical PCM WAV file in memory, for
// exercising the public decode entry points without needing a fixture
// audio file on disk.
func buildWAV(sampleRateHz, numChannels int, samples []int16) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		binary.Write(&data, binary.LittleEndian, s)
	}

	const bitsPerSample = 16
	blockAlign := numChannels * bitsPerSample / 8
	byteRate := sampleRateHz * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRateHz))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestFromEncodedBytesDefaults(t *testing.T) {
	samples := make([]int16, 0, 2000)
	for i := 0; i < 1000; i++ {
		samples = append(samples, int16(i), int16(-i))
	}
	data := buildWAV(44100, 2, samples)

	wf, err := FromEncodedBytes(data, DecodeArgs{})
	require.NoError(t, err)
	assert.Equal(t, uint32(44100), wf.FrameRateHz())
	assert.Equal(t, uint16(2), wf.NumChannels())
	assert.Equal(t, uint64(1000), wf.NumFrames())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")
	data := buildWAV(8000, 1, []int16{0, 100, 200})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	wf, err := FromFile(path, DecodeArgs{})
	require.NoError(t, err)
	assert.Equal(t, uint32(8000), wf.FrameRateHz())
	assert.Equal(t, uint64(3), wf.NumFrames())
}

func TestFromFileNotFound(t *testing.T) {
	_, err := FromFile("/nonexistent/path/to/nothing.wav", DecodeArgs{})
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, KindFileNotFound, KindOf(err))
}

func TestFromEncodedBytesUnknownEncoding(t *testing.T) {
	_, err := FromEncodedBytes([]byte("not an audio file at all, just text"), DecodeArgs{})
	assert.ErrorIs(t, err, ErrUnknownInputEncoding)
}

func TestDecodeArgsValidation(t *testing.T) {
	data := buildWAV(44100, 2, []int16{0, 0, 1, 1})

	_, err := FromEncodedBytes(data, DecodeArgs{StartTimeMilliseconds: 5000, EndTimeMilliseconds: 1000})
	assert.ErrorIs(t, err, ErrWrongTimeOffset)

	_, err = FromEncodedBytes(data, DecodeArgs{ZeroPadEnding: true})
	assert.ErrorIs(t, err, ErrCannotZeroPadWithoutSpecifiedLength)

	_, err = FromEncodedBytes(data, DecodeArgs{NumChannels: 1, ConvertToMono: true})
	assert.ErrorIs(t, err, ErrWrongNumChannelsAndMono)

	_, err = FromEncodedBytes(data, DecodeArgs{NumChannels: 5})
	assert.ErrorIs(t, err, ErrWrongNumChannels)
}

func TestDecodeArgsChannelShapingAndSlicing(t *testing.T) {
	// 2 channels, 10 frames at 1000hz, so 1ms == 1 frame.
	numFrames := 10
	samples := make([]int16, 0, numFrames*2)
	for f := 0; f < numFrames; f++ {
		samples = append(samples, int16(f), int16(f*10))
	}
	data := buildWAV(1000, 2, samples)

	wf, err := FromEncodedBytes(data, DecodeArgs{
		StartTimeMilliseconds: 2,
		EndTimeMilliseconds:   5,
		NumChannels:           1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint16(1), wf.NumChannels())
	assert.Equal(t, uint64(3), wf.NumFrames())
}

func TestDecodeArgsZeroPad(t *testing.T) {
	data := buildWAV(1000, 1, []int16{0, 1, 2})

	wf, err := FromEncodedBytes(data, DecodeArgs{
		EndTimeMilliseconds: 10,
		ZeroPadEnding:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), wf.NumFrames())
	last, ok := wf.GetSample(9, 0)
	require.True(t, ok)
	assert.Zero(t, last)
}

func TestFromFileInto2DArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")
	data := buildWAV(8000, 2, []int16{0, 100, 16384, -16384})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	arr, err := FromFileInto2DArray(path, DecodeArgs{})
	require.NoError(t, err)
	require.Len(t, arr, 2)
	assert.Len(t, arr[0], 2)
}
