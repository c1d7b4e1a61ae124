//go:build !soxr

package resample

import "errors"

// ErrSoxHQUnavailable is returned by resampleSoxHQ when the repo was
// built without the `soxr` tag (and therefore without cgo/libsoxr).
var ErrSoxHQUnavailable = errors.New("resample: sox_hq mode requires building with -tags soxr")

func resampleSoxHQ(samples []float32, channels int, srcHz, tgtHz uint32) ([]float32, error) {
	return nil, ErrSoxHQUnavailable
}
