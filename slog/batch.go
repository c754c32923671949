package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/niraulas/egovscan"
)

// Ensure LoggingBatchService implements egovscan.BatchService.
var _ egovscan.BatchService = (*LoggingBatchService)(nil)

// LoggingBatchService wraps a BatchService with per-batch logging.
type LoggingBatchService struct {
	next   egovscan.BatchService
	logger *slog.Logger
}

// NewLoggingBatchService creates a new LoggingBatchService.
func NewLoggingBatchService(next egovscan.BatchService, logger *slog.Logger) *LoggingBatchService {
	return &LoggingBatchService{next: next, logger: logger}
}

// ExtractBatch delegates to the wrapped service and logs batch size,
// duration, and failure count.
func (s *LoggingBatchService) ExtractBatch(ctx context.Context, urls []string) (results []egovscan.URLResult, err error) {
	defer func(begin time.Time) {
		failed := 0
		for _, result := range results {
			if result.Failed() {
				failed++
			}
		}
		s.logger.Info("batch extraction",
			"urls", len(urls),
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractBatch(ctx, urls)
}
