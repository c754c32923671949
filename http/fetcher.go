// Package http provides HTTP implementations of the egovscan boundary:
// a PageFetcher that retrieves raw page HTML and classifies transport
// failures, and the API server that exposes batch extraction over REST.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/niraulas/egovscan"
)

// DefaultFetchTimeout is the default deadline for a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements egovscan.PageFetcher at compile time.
var _ egovscan.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It makes exactly one GET attempt per URL and converts every failure mode
// into a classified FetchResult; it never returns an error or panics.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request deadline.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content of rawURL. The returned result carries
// either the response body or an ErrorKind, never both.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) egovscan.FetchResult {
	result := egovscan.FetchResult{URL: rawURL}

	u, err := neturl.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		result.Kind = egovscan.KindInvalidURL
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Kind = egovscan.KindInvalidURL
		return result
	}

	resp, err := f.client.Do(req)
	if err != nil {
		result.Kind = classify(err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Kind = egovscan.KindHTTPStatusError
		return result
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Kind = classify(err)
		return result
	}

	result.HTML = string(body)
	return result
}

// classify maps a transport error to its coarse ErrorKind. The mapping is
// explicit: timeouts first (a timed-out dial is a Timeout, not a
// ConnectionError), then DNS, dial, and TLS failures, then the catch-all.
func classify(err error) egovscan.ErrorKind {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return egovscan.KindTimeout
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	var certErr *tls.CertificateVerificationError
	var recErr tls.RecordHeaderError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) ||
		errors.As(err, &certErr) || errors.As(err, &recErr) {
		return egovscan.KindConnectionError
	}

	return egovscan.KindUnknownTransport
}
