// Package batch fans the decode pipeline out across many inputs,
// bounding concurrency with a worker-count knob and preserving input
// order in the result slice. Concurrency is a bounded
// errgroup.Group fan-out: N independent file decodes write into
// disjoint result slots rather than sharing mutable state.
package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wavecat/wavecat"
)

// NamedResult pairs an input identifier (its filename) with either a
// successful value or the error that input produced. Exactly one of Value/Err is meaningful; Err is
// nil on success.
type NamedResult[T any] struct {
	Name  string
	Value T
	Err   error
}

// workerCount resolves BatchArgs.NumWorkers (0 = auto) into a concrete
// worker count for errgroup.SetLimit: 0 means pick based on available
// parallelism, 1 means strictly sequential, N means exactly N workers.
func workerCount(numWorkers uint32) int {
	if numWorkers == 0 {
		n := runtime.GOMAXPROCS(0)
		if n < 1 {
			n = 1
		}
		return n
	}
	return int(numWorkers)
}

// runWrapped decodes every input concurrently, writing each outcome
// into its positional slot so that batch(xs)[i] always corresponds to
// xs[i] regardless of completion order. A failure at one position
// never aborts the batch.
func runWrapped[T any](names []string, numWorkers uint32, work func(i int) (T, error)) []NamedResult[T] {
	results := make([]NamedResult[T], len(names))

	var eg errgroup.Group
	eg.SetLimit(workerCount(numWorkers))

	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			value, err := work(i)
			results[i] = NamedResult[T]{Name: name, Value: value, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// runUnwrapped decodes every input concurrently and fails the whole
// batch on the first error, skipping per-item error wrapping entirely.
// The first error encountered (not necessarily the first input, since
// completion order is unspecified) is returned with no results. The
// group carries no cancellation, so the other inputs still run to
// completion before the error is returned.
func runUnwrapped[T any](names []string, numWorkers uint32, work func(i int) (T, error)) ([]T, error) {
	results := make([]T, len(names))

	eg := new(errgroup.Group)
	eg.SetLimit(workerCount(numWorkers))

	for i := range names {
		i := i
		eg.Go(func() error {
			value, err := work(i)
			if err != nil {
				return err
			}
			results[i] = value
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// WaveformsFromFiles decodes filenames concurrently per args and
// returns one NamedResult per input, in input order.
func WaveformsFromFiles(filenames []string, args wavecat.BatchArgs) []NamedResult[*wavecat.Waveform] {
	return runWrapped(filenames, args.NumWorkers, func(i int) (*wavecat.Waveform, error) {
		return wavecat.FromFile(filenames[i], args.DecodeArgs)
	})
}

// WaveformsFromFilesInto2DArrays decodes filenames concurrently and
// exports each successful waveform to a (num_frames, num_channels) 2D
// array, wrapping per-input outcomes so one bad input doesn't spoil
// the rest.
func WaveformsFromFilesInto2DArrays(filenames []string, args wavecat.BatchArgs) []NamedResult[[][]float32] {
	return runWrapped(filenames, args.NumWorkers, func(i int) ([][]float32, error) {
		wf, err := wavecat.FromFile(filenames[i], args.DecodeArgs)
		if err != nil {
			return nil, err
		}
		return wf.To2DArray(), nil
	})
}

// WaveformsFromFilesTo2DArray decodes filenames concurrently and
// returns only the exported 2D arrays, in input order. It aborts and
// returns the first error encountered rather than filling partial
// results, for callers confident their inputs are all valid.
func WaveformsFromFilesTo2DArray(filenames []string, args wavecat.BatchArgs) ([][][]float32, error) {
	return runUnwrapped(filenames, args.NumWorkers, func(i int) ([][]float32, error) {
		wf, err := wavecat.FromFile(filenames[i], args.DecodeArgs)
		if err != nil {
			return nil, err
		}
		return wf.To2DArray(), nil
	})
}

// WaveformsFromFilesInto2DArraysUnwrapped is WaveformsFromFilesTo2DArray
// under a name that matches the wrapped/unwrapped naming pair exposed
// by the rest of the batch API; both abort on first error and skip
// per-item error wrapping.
func WaveformsFromFilesInto2DArraysUnwrapped(filenames []string, args wavecat.BatchArgs) ([][][]float32, error) {
	return WaveformsFromFilesTo2DArray(filenames, args)
}
