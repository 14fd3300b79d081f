package kmp

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// Job is one independent (pattern, text) pair.
type Job[T comparable] struct {
	Pattern []T
	Text    []T
}

// BatchOptions controls SearchAll.
type BatchOptions struct {
	Workers int  // worker goroutines; <= 0 means GOMAXPROCS
	Mode    Mode // scan mode applied to every job
}

// SearchAll runs every job on a pool of workers and returns the results in
// job order. A single search is never split across workers.
//
// The first failing job cancels the rest and is returned as a *JobError.
// If ctx is done first, ctx.Err() is returned. An unknown opts.Mode fails
// with ErrInvalidMode before any job runs.
func SearchAll[T comparable](ctx context.Context, jobs []Job[T], opts BatchOptions) ([]Result, error) {
	if !opts.Mode.valid() {
		return nil, ErrInvalidMode
	}
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	idx := make(chan int, workers*2)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-idx:
					if !ok {
						return
					}
					res, err := runJob(ctx, jobs[i], opts.Mode)
					if err != nil {
						if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
							return
						}
						fail(&JobError{Index: i, Err: err})
						return
					}
					results[i] = res
				}
			}
		}()
	}

feed:
	for i := range jobs {
		select {
		case idx <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(idx)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob[T comparable](ctx context.Context, job Job[T], mode Mode) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	m, err := Compile(job.Pattern)
	if err != nil {
		return Result{}, err
	}
	return m.scan.run(ctx, job.Text, mode, -1)
}
