// Package slog provides logging decorators for egovscan domain interfaces
// built on the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/niraulas/egovscan"
)

// Ensure LoggingFetcher implements egovscan.PageFetcher.
var _ egovscan.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with per-fetch logging.
type LoggingFetcher struct {
	next   egovscan.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next egovscan.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) egovscan.FetchResult {
	begin := time.Now()
	result := f.next.Fetch(ctx, url)

	if result.Failed() {
		f.logger.Warn("page fetch failed",
			"url", url,
			"kind", string(result.Kind),
			"duration", time.Since(begin),
		)
		return result
	}

	f.logger.Info("page fetch",
		"url", url,
		"bytes", len(result.HTML),
		"duration", time.Since(begin),
	)
	return result
}
