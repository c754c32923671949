package mock

import (
	"context"

	"github.com/niraulas/egovscan"
)

var _ egovscan.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of egovscan.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) egovscan.FetchResult
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) egovscan.FetchResult {
	return f.FetchFn(ctx, url)
}
