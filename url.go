package egovscan

import (
	"net/url"
	"strings"
)

// NormalizeURL resolves ref against base using RFC 3986 relative-reference
// resolution and returns the result without a trailing slash. A single
// trailing slash is trimmed from base before joining and from the result
// after joining; repeated trailing slashes are left alone.
//
// The function is pure and never fails: malformed input is returned
// best-effort with only the trailing-slash trim applied.
func NormalizeURL(ref, base string) string {
	base = strings.TrimSuffix(base, "/")

	b, err := url.Parse(base)
	if err != nil {
		return strings.TrimSuffix(ref, "/")
	}
	r, err := url.Parse(ref)
	if err != nil {
		return strings.TrimSuffix(ref, "/")
	}

	return strings.TrimSuffix(b.ResolveReference(r).String(), "/")
}
