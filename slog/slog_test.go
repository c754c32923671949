package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/niraulas/egovscan"
	"github.com/niraulas/egovscan/mock"
	egoslog "github.com/niraulas/egovscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs successful fetch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) egovscan.FetchResult {
				return egovscan.FetchResult{URL: url, HTML: "<html></html>"}
			},
		}

		fetcher := egoslog.NewLoggingFetcher(next, logger)
		result := fetcher.Fetch(context.Background(), "https://example.gov/en")

		require.False(t, result.Failed())
		assert.Equal(t, "<html></html>", result.HTML)
		assert.Contains(t, buf.String(), "page fetch")
		assert.Contains(t, buf.String(), "https://example.gov/en")
	})

	t.Run("logs failure kind", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) egovscan.FetchResult {
				return egovscan.FetchResult{URL: url, Kind: egovscan.KindTimeout}
			},
		}

		fetcher := egoslog.NewLoggingFetcher(next, logger)
		result := fetcher.Fetch(context.Background(), "https://example.gov/en")

		require.True(t, result.Failed())
		assert.Contains(t, buf.String(), "page fetch failed")
		assert.Contains(t, buf.String(), "Timeout")
	})
}

func TestLoggingBatchService_ExtractBatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.BatchService{
		ExtractBatchFn: func(ctx context.Context, urls []string) ([]egovscan.URLResult, error) {
			return []egovscan.URLResult{
				{URL: urls[0], Links: []egovscan.ServiceLink{}},
				{URL: urls[1], Kind: egovscan.KindConnectionError},
			}, nil
		},
	}

	service := egoslog.NewLoggingBatchService(next, logger)
	results, err := service.ExtractBatch(context.Background(), []string{"https://a.gov", "https://b.gov"})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Contains(t, buf.String(), "batch extraction")
	assert.Contains(t, buf.String(), "urls=2")
	assert.Contains(t, buf.String(), "failed=1")
}
