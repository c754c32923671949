package mock

import "github.com/niraulas/egovscan"

var _ egovscan.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of egovscan.LinkExtractor.
type LinkExtractor struct {
	ExtractFn func(baseURL, html string) []egovscan.ServiceLink
}

func (e *LinkExtractor) Extract(baseURL, html string) []egovscan.ServiceLink {
	return e.ExtractFn(baseURL, html)
}
