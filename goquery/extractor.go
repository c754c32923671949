// Package goquery implements the egovscan LinkExtractor using CSS selection
// over parsed HTML.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/niraulas/egovscan"
)

// servicesBlockSelector is the structural marker of the e-government
// services menu block used by the municipal sites' theme.
const servicesBlockSelector = "div#block-menu-menu-egov-services"

// electronicKeyword matches the two spellings of "electronic (services)"
// observed in menu anchor text, case-insensitively, as a substring.
var electronicKeyword = regexp.MustCompile(`(?i)विधुतीय|विद्युतीय`)

// Ensure Extractor implements egovscan.LinkExtractor at compile time.
var _ egovscan.LinkExtractor = (*Extractor)(nil)

// regionResolver locates a candidate services region in a document.
// The returned selection may be empty.
type regionResolver func(doc *goquery.Document) *goquery.Selection

// Extractor harvests service links from the services region of a page.
// The region is located by an ordered chain of resolver strategies; the
// first resolver producing a non-empty selection wins. A page where no
// resolver matches yields an empty result, not an error.
type Extractor struct {
	resolvers []regionResolver
}

// NewExtractor creates an Extractor with the default resolver chain:
// the services block marker first, then the keyword-anchor fallback.
func NewExtractor() *Extractor {
	return &Extractor{
		resolvers: []regionResolver{
			resolveServicesBlock,
			resolveKeywordListItem,
		},
	}
}

// Extract parses html and returns the service links found in the resolved
// region, in document order. Anchors with empty visible text or an empty
// href after trimming are dropped. Hrefs are resolved against baseURL.
// Malformed or empty HTML degrades to an empty result.
func (e *Extractor) Extract(baseURL, html string) []egovscan.ServiceLink {
	links := []egovscan.ServiceLink{}
	if html == "" {
		return links
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return links
	}

	var region *goquery.Selection
	for _, resolve := range e.resolvers {
		if sel := resolve(doc); sel.Length() > 0 {
			region = sel
			break
		}
	}
	if region == nil {
		return links
	}

	region.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		name := strings.TrimSpace(sel.Text())
		if name == "" || href == "" {
			return
		}
		links = append(links, egovscan.ServiceLink{
			Name: name,
			URL:  egovscan.NormalizeURL(href, baseURL),
		})
	})

	return links
}

// resolveServicesBlock finds the services menu block by its fixed id.
func resolveServicesBlock(doc *goquery.Document) *goquery.Selection {
	return doc.Find(servicesBlockSelector).First()
}

// resolveKeywordListItem finds the first anchor whose visible text contains
// the "electronic" keyword and escalates to its nearest li ancestor. An
// anchor without a li ancestor resolves to nothing.
func resolveKeywordListItem(doc *goquery.Document) *goquery.Selection {
	anchor := doc.Find("a").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return electronicKeyword.MatchString(sel.Text())
	}).First()

	return anchor.Closest("li")
}
