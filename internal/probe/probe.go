// Package probe sniffs the container/codec of encoded audio bytes and
// decodes them into interleaved, normalized f32 PCM at the source
// frame rate and channel count.
package probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrUnrecognized is returned by Decode when no registered codec
// claims the input.
var ErrUnrecognized = errors.New("no registered decoder recognizes this input")

// SourceFormat describes the PCM the decoder produced, before any
// channel shaping, time slicing or resampling is applied.
type SourceFormat struct {
	FrameRateHz int
	NumChannels int
}

// Decoded is the full output of a one-shot decode: every frame of the
// source, normalized to interleaved f32 in [-1, 1].
type Decoded struct {
	Format  SourceFormat
	Samples []float32 // interleaved, len == NumFrames * NumChannels
}

// Codec decodes one container/codec pair. Sniff inspects the leading
// bytes of a stream (already seeked to the start) and reports whether
// it recognizes the format; Decode performs the full decode.
type Codec struct {
	Name   string
	Sniff  func(head []byte) bool
	Decode func(r io.ReadSeeker) (*Decoded, error)
}

// Registry is a backend tag -> Codec map, keyed by content sniff
// rather than file extension so the probe is self-sufficient without
// relying on a path's suffix.
type Registry struct {
	codecs []Codec
	byName map[string]*Codec
}

// NewRegistry builds a registry with every built-in codec registered.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Codec)}
	r.Register(wavCodec())
	r.Register(flacCodec())
	r.Register(mp3Codec())
	return r
}

// Register adds a codec to the registry. Codecs are probed in
// registration order, so more specific sniffers should register
// first.
func (r *Registry) Register(c Codec) {
	r.codecs = append(r.codecs, c)
	r.byName[c.Name] = &r.codecs[len(r.codecs)-1]
}

// sniffHeadLen is long enough to cover every built-in codec's magic:
// RIFF/WAVE (12 bytes), fLaC (4 bytes), and an MP3 frame sync or ID3
// header (10 bytes).
const sniffHeadLen = 16

// Decode sniffs backend's data and decodes it in full. When backend is
// non-empty it restricts the probe to that single registered codec
// (the DecodeArgs.decoding_backend override); otherwise every codec is
// tried in registration order.
func (r *Registry) Decode(data []byte, backend string) (*Decoded, error) {
	head := data
	if len(head) > sniffHeadLen {
		head = head[:sniffHeadLen]
	}

	candidates := r.codecs
	if backend != "" {
		c, ok := r.byName[backend]
		if !ok {
			return nil, fmt.Errorf("unknown decoding backend %q", backend)
		}
		candidates = []Codec{*c}
	}

	for _, c := range candidates {
		if !c.Sniff(head) {
			continue
		}
		decoded, err := c.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		return decoded, nil
	}

	return nil, ErrUnrecognized
}
