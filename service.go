package egovscan

import "context"

// ErrorKind is a coarse classification of a page fetch failure. The set of
// kinds is closed; callers discriminate failures by kind only, never by the
// underlying error message.
type ErrorKind string

// Fetch failure kinds.
const (
	KindTimeout          ErrorKind = "Timeout"
	KindConnectionError  ErrorKind = "ConnectionError"
	KindHTTPStatusError  ErrorKind = "HTTPStatusError"
	KindInvalidURL       ErrorKind = "InvalidURL"
	KindUnknownTransport ErrorKind = "UnknownTransportError"
)

// FetchResult holds the outcome of fetching a single page. Exactly one of
// Kind and HTML is set: a failed fetch carries a kind and no HTML, a
// successful fetch carries the response body and no kind.
type FetchResult struct {
	URL  string
	Kind ErrorKind
	HTML string
}

// Failed reports whether the fetch ended in a classified failure.
func (r FetchResult) Failed() bool {
	return r.Kind != ""
}

// ServiceLink is one harvested service entry: the anchor's visible text and
// its normalized absolute URL. Both fields are non-empty by construction;
// candidates failing either check are dropped during harvesting.
type ServiceLink struct {
	Name string
	URL  string
}

// URLResult is the terminal outcome for one input URL: either a classified
// fetch failure or the ordered list of service links harvested from the
// page. Links is non-nil (possibly empty) on success and nil on failure.
type URLResult struct {
	URL   string
	Kind  ErrorKind
	Links []ServiceLink
}

// Failed reports whether the URL's fetch failed. Extraction itself never
// fails; a page without a services block yields an empty Links slice.
func (r URLResult) Failed() bool {
	return r.Kind != ""
}

// PageFetcher retrieves raw HTML for a single URL. Implementations classify
// every failure mode into the result's ErrorKind rather than returning an
// error; a fetch must never panic across this boundary.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) FetchResult
}

// LinkExtractor harvests service links from raw HTML. Absence of a services
// block is a valid empty result, not an error, and malformed HTML degrades
// to fewer or zero links.
type LinkExtractor interface {
	Extract(baseURL, html string) []ServiceLink
}

// BatchService processes an ordered list of URLs and returns one URLResult
// per input URL, in input order. Implementations isolate per-URL failures;
// the only batch-level error is a contract violation detected before any
// work is dispatched.
type BatchService interface {
	ExtractBatch(ctx context.Context, urls []string) ([]URLResult, error)
}
