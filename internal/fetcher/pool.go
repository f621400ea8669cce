package fetcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcorpas/podarc/internal/domain"
	"github.com/mcorpas/podarc/internal/manifest"
)

type poolResult struct {
	res *domain.FetchResult
	err error
}

// runPool downloads with a bounded worker pool. Fetches may overlap, but
// completions are reported and recorded in manifest order, and the first
// failure cancels everything still in flight.
func (f *Fetcher) runPool(ctx context.Context, run *domain.FetchRun, m *manifest.Manifest) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := len(m.Entries)
	workerCount := f.app.Config.Fetch.Workers
	if workerCount > total {
		workerCount = total
	}

	jobs := make(chan manifest.Entry)
	results := make(chan poolResult, total)

	var wg sync.WaitGroup
	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.worker(ctx, jobs, results)
		}()
	}

	// Dispatch in manifest order; stop feeding once cancelled
	go func() {
		defer close(jobs)
		for _, e := range m.Entries {
			select {
			case <-ctx.Done():
				return
			case jobs <- e:
			}
		}
	}()

	// Close results once every worker has drained out so the collector
	// below can tell "no more results" from "still in flight".
	go func() {
		wg.Wait()
		close(results)
	}()

	// Buffer out-of-order completions and flush them in manifest order
	pending := make(map[int]poolResult, total)
	next := 1
	var firstErr error

	for pr := range results {
		pending[pr.res.Index] = pr

		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			r.res.RunID = run.ID
			f.recordResult(ctx, r.res)

			if r.err != nil {
				if firstErr == nil {
					firstErr = &domain.FetchError{Index: r.res.Index, Title: r.res.Title, Err: r.err}
					cancel()
				}
				continue
			}

			f.app.Logger.Info("[%d/%d] Downloaded: %s (%d bytes)", r.res.Index, total, r.res.Title, r.res.Bytes)
		}

		if firstErr == nil && next > total {
			break
		}
	}

	if firstErr != nil {
		return firstErr
	}

	if next <= total {
		// Workers exited before all entries completed
		if err := ctx.Err(); err != nil {
			return err
		}
		return fmt.Errorf("download pool stopped after entry %d of %d", next-1, total)
	}

	return nil
}

// worker pulls entries from the channel and executes them until it is closed
func (f *Fetcher) worker(ctx context.Context, jobs <-chan manifest.Entry, results chan<- poolResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-jobs:
			if !ok {
				return
			}
			res, err := f.fetchEntry(ctx, e)
			results <- poolResult{res: res, err: err}
		}
	}
}
