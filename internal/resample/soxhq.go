//go:build soxr

package resample

import (
	"fmt"
	"unsafe"
)

/*
#cgo pkg-config: soxr
#include <soxr.h>
#include <stdlib.h>
*/
import "C"

// resampleSoxHQ converts a full interleaved buffer in one call via
// libsoxr's soxr_oneshot, the convenience entry point for cases (like
// this one) where the whole source is already buffered rather than
// streamed. Modeled on the cgo binding in
// go/pkg/audio/resampler/soxr.go, which instead drives the streaming
// soxr_process API; a full in-memory decode has no need for that
// incremental push/pull loop.
func resampleSoxHQ(samples []float32, channels int, srcHz, tgtHz uint32) ([]float32, error) {
	srcFrames := len(samples) / channels
	target := OutputFrames(srcFrames, srcHz, tgtHz)

	in := make([]C.double, len(samples))
	for i, s := range samples {
		in[i] = C.double(s)
	}

	out := make([]C.double, target*channels)

	ioSpec := C.soxr_io_spec(C.soxr_datatype_t(C.SOXR_FLOAT64_I), C.soxr_datatype_t(C.SOXR_FLOAT64_I))
	qSpec := C.soxr_quality_spec(C.SOXR_HQ, 0)

	var odone C.size_t
	var soxrErr C.soxr_error_t
	if len(in) > 0 {
		soxrErr = C.soxr_oneshot(
			C.double(srcHz), C.double(tgtHz), C.uint(channels),
			unsafe.Pointer(&in[0]), C.size_t(srcFrames), nil,
			unsafe.Pointer(&out[0]), C.size_t(target), &odone,
			&ioSpec, &qSpec, nil,
		)
	}
	if soxrErr != nil {
		return nil, fmt.Errorf("soxr_oneshot failed: %s", C.GoString(soxrErr))
	}

	result := make([]float32, target*channels)
	for i, v := range out {
		result[i] = float32(v)
	}
	return result, nil
}
