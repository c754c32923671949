// Package batch orchestrates fetch-and-extract work for a list of URLs
// across a bounded pool of concurrent workers, assembling per-URL results
// in input order.
package batch

import (
	"context"

	"github.com/niraulas/egovscan"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the pool size used when the caller does not
// configure one. It bounds the number of simultaneously in-flight fetches.
const DefaultConcurrency = 5

// Ensure Runner implements egovscan.BatchService at compile time.
var _ egovscan.BatchService = (*Runner)(nil)

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run. Failed events carry
// the URL's classified error kind.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Kind      egovscan.ErrorKind
}

// ProgressFunc is a callback for reporting batch progress. It is invoked
// from a single goroutine and need not be safe for concurrent use.
type ProgressFunc func(event ProgressEvent)

// Runner processes URL batches: each URL is fetched, successful fetches are
// passed to the extractor with the URL itself as the base, and the outcomes
// are collected into a slice matching the input order. A failure on one URL
// never affects any other URL in the batch.
type Runner struct {
	Fetcher     egovscan.PageFetcher
	Extractor   egovscan.LinkExtractor
	Concurrency int
}

// NewRunner creates a Runner with the default concurrency.
func NewRunner(fetcher egovscan.PageFetcher, extractor egovscan.LinkExtractor) *Runner {
	return &Runner{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Concurrency: DefaultConcurrency,
	}
}

// urlJob holds the outcome of processing a single URL along with its
// position in the input sequence.
type urlJob struct {
	position int
	result   egovscan.URLResult
}

// ExtractBatch processes every URL in urls and returns one result per URL,
// index-aligned with the input. Duplicate URLs are processed independently.
// The call returns only after every unit of work has completed.
//
// A non-positive Concurrency is a contract violation and is reported
// immediately, before any work is dispatched.
func (r *Runner) ExtractBatch(ctx context.Context, urls []string) ([]egovscan.URLResult, error) {
	return r.ExtractBatchProgress(ctx, urls, nil)
}

// ExtractBatchProgress is like ExtractBatch but reports progress through
// the optional callback as units of work complete.
func (r *Runner) ExtractBatchProgress(ctx context.Context, urls []string, progress ProgressFunc) ([]egovscan.URLResult, error) {
	if r.Concurrency <= 0 {
		return nil, egovscan.Errorf(egovscan.EINVALID, "concurrency must be positive, got %d", r.Concurrency)
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	jobCh := make(chan urlJob, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				jobCh <- r.processURL(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(jobCh)
	}()

	// Collect into a pre-sized slice indexed by submission order; slots are
	// disjoint, so completion order does not matter.
	results := make([]egovscan.URLResult, total)
	completed := 0
	for job := range jobCh {
		completed++
		results[job.position] = job.result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       job.result.URL,
		}
		if job.result.Failed() {
			event.Type = ProgressFailed
			event.Kind = job.result.Kind
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results, nil
}

// processURL runs the fetch-then-extract pipeline for a single URL.
func (r *Runner) processURL(ctx context.Context, position int, url string) urlJob {
	fetched := r.Fetcher.Fetch(ctx, url)
	if fetched.Failed() {
		return urlJob{
			position: position,
			result:   egovscan.URLResult{URL: url, Kind: fetched.Kind},
		}
	}

	links := r.Extractor.Extract(url, fetched.HTML)
	return urlJob{
		position: position,
		result:   egovscan.URLResult{URL: url, Links: links},
	}
}
