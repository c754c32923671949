package main

import (
	"fmt"

	"github.com/niraulas/egovscan"
	"github.com/niraulas/egovscan/batch"
	"github.com/niraulas/egovscan/goquery"
	egohttp "github.com/niraulas/egovscan/http"
	egoslog "github.com/niraulas/egovscan/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	var fetcher egovscan.PageFetcher = egohttp.NewFetcher(egohttp.WithTimeout(c.Timeout))
	if c.Verbose {
		fetcher = egoslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	runner := batch.NewRunner(fetcher, goquery.NewExtractor())
	runner.Concurrency = c.Concurrency

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", event.Completed, event.Total, event.URL, event.Kind)
		}
	}

	results, err := runner.ExtractBatchProgress(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", egovscan.ErrorMessage(err))
		return err
	}

	for _, result := range results {
		fmt.Fprintf(deps.Stdout, "URL: %s\n", result.URL)
		if result.Failed() {
			fmt.Fprintf(deps.Stdout, "Error: %s\n", result.Kind)
			continue
		}
		for _, link := range result.Links {
			fmt.Fprintf(deps.Stdout, "Service Name: %s, Link: %s\n", link.Name, link.URL)
		}
	}

	return nil
}
