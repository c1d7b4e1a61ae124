package wavecat

import (
	"os"

	"github.com/wavecat/wavecat/internal/pipeline"
	"github.com/wavecat/wavecat/internal/probe"
	"github.com/wavecat/wavecat/internal/resample"
)

// ResampleMode selects a resampling algorithm. It re-exports
// internal/resample's Mode so callers never import an internal
// package to name one.
type ResampleMode = resample.Mode

const (
	ResampleModeLinear = resample.ModeLinear
	ResampleModeSinc   = resample.ModeSinc
	ResampleModeSoxHQ  = resample.ModeSoxHQ
)

// DefaultResampleMode is the quality-oriented mode the zero-value
// DecodeArgs.ResampleMode resolves to.
const DefaultResampleMode = ResampleModeSinc

// DecodeArgs parameterizes the decode pipeline. The zero value decodes
// the whole file at its native rate and channel layout.
type DecodeArgs struct {
	StartTimeMilliseconds uint64
	EndTimeMilliseconds   uint64 // 0 means "to end"
	FrameRateHz           uint32 // 0 means "keep source rate"
	NumChannels           uint16 // 0 means "all"
	ConvertToMono         bool
	ZeroPadEnding         bool
	ResampleMode          ResampleMode // zero value resolves to DefaultResampleMode
	DecodingBackend       string       // empty means "try every registered codec"
}

// BatchArgs is DecodeArgs plus the batch executor's worker-count knob.
type BatchArgs struct {
	DecodeArgs
	NumWorkers uint32 // 0 = choose automatically
}

var registry = probe.NewRegistry()

// validate runs the option checks that don't depend on the decoded
// source format.
func (a DecodeArgs) validate() error {
	if a.EndTimeMilliseconds != 0 && a.StartTimeMilliseconds >= a.EndTimeMilliseconds {
		return newError(KindWrongTimeOffset, "start_time_milliseconds (%d) must be less than end_time_milliseconds (%d)", a.StartTimeMilliseconds, a.EndTimeMilliseconds)
	}
	if a.EndTimeMilliseconds == 0 && a.ZeroPadEnding {
		return newError(KindCannotZeroPadWithoutSpecifiedLength, "zero_pad_ending requires a non-zero end_time_milliseconds")
	}
	if a.NumChannels == 1 && a.ConvertToMono {
		return newError(KindWrongNumChannelsAndMono, "convert_to_mono is ill-defined when num_channels == 1")
	}
	return nil
}

// resampleModeOrDefault resolves the zero value of ResampleMode to the
// package default.
func (a DecodeArgs) resampleModeOrDefault() ResampleMode {
	if a.ResampleMode == 0 {
		return DefaultResampleMode
	}
	return a.ResampleMode
}

// FromFile runs the full decode pipeline against a file on disk.
func FromFile(path string, args DecodeArgs) (*Waveform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(KindFileNotFound, err)
	}
	return decodeBytes(data, args)
}

// FromEncodedBytes runs the full decode pipeline against an in-memory
// encoded buffer.
func FromEncodedBytes(data []byte, args DecodeArgs) (*Waveform, error) {
	return decodeBytes(data, args)
}

// FromFileInto2DArray is FromFile followed by To2DArray, for callers
// that only want the exported array.
func FromFileInto2DArray(path string, args DecodeArgs) ([][]float32, error) {
	wf, err := FromFile(path, args)
	if err != nil {
		return nil, err
	}
	return wf.To2DArray(), nil
}

// FromEncodedBytesInto2DArray is FromEncodedBytes followed by
// To2DArray.
func FromEncodedBytesInto2DArray(data []byte, args DecodeArgs) ([][]float32, error) {
	wf, err := FromEncodedBytes(data, args)
	if err != nil {
		return nil, err
	}
	return wf.To2DArray(), nil
}

// decodeBytes runs the full pipeline: probe, validate, normalize
// (already done inside probe), shape, slice, resample, assemble.
func decodeBytes(data []byte, args DecodeArgs) (*Waveform, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	decoded, err := registry.Decode(data, args.DecodingBackend)
	if err != nil {
		if err == probe.ErrUnrecognized {
			return nil, wrapError(KindUnknownInputEncoding, err)
		}
		return nil, wrapError(KindDecodingError, err)
	}

	srcChannels := decoded.Format.NumChannels
	srcRateHz := uint32(decoded.Format.FrameRateHz)

	if int(args.NumChannels) > srcChannels {
		return nil, newError(KindWrongNumChannels, "requested num_channels %d exceeds source channel count %d", args.NumChannels, srcChannels)
	}

	if args.FrameRateHz != 0 && !resample.SupportsRatio(srcRateHz, args.FrameRateHz) {
		return nil, newError(KindWrongFrameRateRatio, "frame_rate_hz %d is outside the supported ratio range for source rate %d", args.FrameRateHz, srcRateHz)
	}

	samples, channels := pipeline.ShapeChannels(decoded.Samples, srcChannels, int(args.NumChannels), args.ConvertToMono)

	samples = pipeline.Slice(samples, channels, srcRateHz, args.StartTimeMilliseconds, args.EndTimeMilliseconds, args.ZeroPadEnding)

	outRateHz := srcRateHz
	if args.FrameRateHz != 0 && args.FrameRateHz != srcRateHz {
		samples, err = resample.Resample(samples, channels, srcRateHz, args.FrameRateHz, args.resampleModeOrDefault())
		if err != nil {
			return nil, wrapError(KindDecodingError, err)
		}
		outRateHz = args.FrameRateHz
	}

	return newWaveform(outRateHz, uint16(channels), samples), nil
}
