package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/niraulas/egovscan"
	egohttp "github.com/niraulas/egovscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := egohttp.NewFetcher()

		result := fetcher.Fetch(context.Background(), server.URL)
		require.False(t, result.Failed())
		assert.Equal(t, server.URL, result.URL)
		assert.Equal(t, "<html><body>Hello World</body></html>", result.HTML)
	})

	t.Run("classifies slow server as Timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("too late"))
		}))
		defer server.Close()

		fetcher := egohttp.NewFetcher(egohttp.WithTimeout(20 * time.Millisecond))

		result := fetcher.Fetch(context.Background(), server.URL)
		require.True(t, result.Failed())
		assert.Equal(t, egovscan.KindTimeout, result.Kind)
		assert.Empty(t, result.HTML)
	})

	t.Run("classifies refused connection as ConnectionError", func(t *testing.T) {
		t.Parallel()

		// Closing the server immediately frees the port so the dial is refused.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		fetcher := egohttp.NewFetcher()

		result := fetcher.Fetch(context.Background(), url)
		require.True(t, result.Failed())
		assert.Equal(t, egovscan.KindConnectionError, result.Kind)
	})

	t.Run("classifies non-2xx status as HTTPStatusError", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			fetcher := egohttp.NewFetcher()

			result := fetcher.Fetch(context.Background(), server.URL)
			require.True(t, result.Failed(), "status %d", status)
			assert.Equal(t, egovscan.KindHTTPStatusError, result.Kind, "status %d", status)

			server.Close()
		}
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := egohttp.NewFetcher()

		result := fetcher.Fetch(context.Background(), server.URL)
		require.False(t, result.Failed())
		assert.Equal(t, "ok", result.HTML)
	})

	t.Run("classifies malformed URL as InvalidURL", func(t *testing.T) {
		t.Parallel()

		fetcher := egohttp.NewFetcher()

		for _, raw := range []string{"://missing-scheme", "not-a-url", "ftp://example.gov/file", ""} {
			result := fetcher.Fetch(context.Background(), raw)
			require.True(t, result.Failed(), "url %q", raw)
			assert.Equal(t, egovscan.KindInvalidURL, result.Kind, "url %q", raw)
		}
	})

	t.Run("sets exactly one of kind and HTML", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := egohttp.NewFetcher()

		ok := fetcher.Fetch(context.Background(), server.URL)
		assert.Empty(t, ok.Kind)
		assert.NotEmpty(t, ok.HTML)

		failed := fetcher.Fetch(context.Background(), "not-a-url")
		assert.NotEmpty(t, failed.Kind)
		assert.Empty(t, failed.HTML)
	})
}
