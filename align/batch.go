package align

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Pair is one unit of work for Batch.
type Pair struct {
	ID string
	V  string
	W  string
}

// Batch aligns every pair with cfg using at most workers goroutines
// (runtime.NumCPU() when workers < 1). Results keep the order of pairs.
//
// Each alignment owns its DP table; only cfg.Scorer is shared, which must
// be read-only (all scorers in package scoring are). onDone, if non-nil,
// is called from worker goroutines after each successful pair and must be
// safe for concurrent use.
//
// The first failing pair cancels the remaining work and its error is
// returned, wrapped with the pair index and ID. Cancelling ctx stops
// dispatching and returns ctx.Err().
func Batch(ctx context.Context, pairs []Pair, cfg Config, workers int, onDone func(i int)) ([]Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([]Result, len(pairs))
		tokens   = make(chan int, workers)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i := range pairs {
		select {
		case <-ctx.Done():
		case tokens <- 1:
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(i int) {
			defer func() {
				<-tokens
				wg.Done()
			}()
			if ctx.Err() != nil {
				return
			}

			r, err := cfg.Align(pairs[i].V, pairs[i].W)
			if err != nil {
				once.Do(func() {
					firstErr = fmt.Errorf("align: pair %d (%s): %w", i, pairs[i].ID, err)
					cancel()
				})

				return
			}
			results[i] = r
			if onDone != nil {
				onDone(i)
			}
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
