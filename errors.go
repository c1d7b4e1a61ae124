package wavecat

import (
	"errors"
	"fmt"
)

// Kind classifies the distinct ways a decode can fail. Every public
// entry point returns an error that satisfies errors.Is against one of
// the sentinels below.
type Kind string

const (
	KindFileNotFound                      Kind = "FILE_NOT_FOUND"
	KindUnknownInputEncoding               Kind = "UNKNOWN_INPUT_ENCODING"
	KindWrongTimeOffset                    Kind = "WRONG_TIME_OFFSET"
	KindCannotZeroPadWithoutSpecifiedLength Kind = "CANNOT_ZERO_PAD_WITHOUT_SPECIFIED_LENGTH"
	KindWrongNumChannels                   Kind = "WRONG_NUM_CHANNELS"
	KindWrongNumChannelsAndMono            Kind = "WRONG_NUM_CHANNELS_AND_MONO"
	KindWrongFrameRateRatio                Kind = "WRONG_FRAME_RATE_RATIO"
	KindDecodingError                      Kind = "DECODING_ERROR"
)

var (
	ErrFileNotFound                       = errors.New("file not found")
	ErrUnknownInputEncoding                = errors.New("no decoder recognizes this input")
	ErrWrongTimeOffset                     = errors.New("start_time_milliseconds must be less than end_time_milliseconds")
	ErrCannotZeroPadWithoutSpecifiedLength = errors.New("zero_pad_ending requires a non-zero end_time_milliseconds")
	ErrWrongNumChannels                    = errors.New("requested num_channels exceeds the source channel count")
	ErrWrongNumChannelsAndMono              = errors.New("convert_to_mono is ill-defined when num_channels == 1")
	ErrWrongFrameRateRatio                  = errors.New("frame_rate_hz is zero or outside the resampler's supported range")
	ErrDecodingError                        = errors.New("decoder failed on otherwise valid input")

	kindSentinels = map[Kind]error{
		KindFileNotFound:                        ErrFileNotFound,
		KindUnknownInputEncoding:                 ErrUnknownInputEncoding,
		KindWrongTimeOffset:                      ErrWrongTimeOffset,
		KindCannotZeroPadWithoutSpecifiedLength:  ErrCannotZeroPadWithoutSpecifiedLength,
		KindWrongNumChannels:                     ErrWrongNumChannels,
		KindWrongNumChannelsAndMono:              ErrWrongNumChannelsAndMono,
		KindWrongFrameRateRatio:                  ErrWrongFrameRateRatio,
		KindDecodingError:                        ErrDecodingError,
	}
)

// Error is the concrete error type returned by every decode entry
// point. It always wraps one of the sentinel Err* values above, so
// callers can branch with errors.Is without depending on this type.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return string(e.Kind)
}

// Unwrap exposes the underlying cause (if any) for errors.As / further
// unwrapping, independent of sentinel matching below.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrWrongTimeOffset) (etc.) succeed regardless
// of whether this Error wraps an underlying cause: the Kind alone
// determines which sentinel it represents.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf returns the Kind carried by err, or "" if err was not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
