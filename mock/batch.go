package mock

import (
	"context"

	"github.com/niraulas/egovscan"
)

var _ egovscan.BatchService = (*BatchService)(nil)

// BatchService is a mock implementation of egovscan.BatchService.
type BatchService struct {
	ExtractBatchFn func(ctx context.Context, urls []string) ([]egovscan.URLResult, error)
}

func (s *BatchService) ExtractBatch(ctx context.Context, urls []string) ([]egovscan.URLResult, error) {
	return s.ExtractBatchFn(ctx, urls)
}
