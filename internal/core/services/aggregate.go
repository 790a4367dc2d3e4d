package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/ghcontext-cli/internal/logger"
)

// DefaultWorkers is the inner worker pool cap when none is configured.
const DefaultWorkers = 8

// Aggregate dispatches work(i) for every i in [0, n) to a bounded pool of at
// most maxWorkers concurrently-executing workers and concatenates the
// non-empty results in completion order. Completion order among siblings is
// scheduler-dependent and deliberately not stable.
//
// A failing worker is caught here: its error becomes a diagnostic, it
// contributes nothing to the result, and its siblings are never cancelled.
// onDone, when non-nil, observes each completion (success or failure).
//
// Results are serialised through a channel; no accumulator is shared
// between workers.
func Aggregate(
	ctx context.Context,
	n, maxWorkers int,
	work func(ctx context.Context, i int) (string, error),
	onDone func(),
) []string {
	if n == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkers
	}
	if maxWorkers > n {
		maxWorkers = n
	}

	jobs := make(chan int, n)
	results := make(chan string, n)

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out, err := work(ctx, i)
				if err != nil {
					logger.Warn("extraction item failed: %v", err)
					out = ""
				}
				results <- out
				if onDone != nil {
					onDone()
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]string, 0, n)
	for out := range results {
		if out != "" {
			collected = append(collected, out)
		}
	}
	return collected
}
