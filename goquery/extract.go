// Package goquery provides a CSS-selector based implementation of
// docload.HTMLLinkExtractor for HTML documents in the local set.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docload/docload"
)

// Ensure LinkExtractor implements docload.HTMLLinkExtractor at compile time.
var _ docload.HTMLLinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects external references from HTML documents.
// Only absolute http(s) hrefs are reported; relative hrefs are
// navigation within the local set and are skipped, as are javascript:,
// mailto: and similar non-HTTP schemes.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns the external links of an HTML document in document
// order. The anchor text becomes the link's context. Deduplication across
// documents is left to the caller.
func (e *LinkExtractor) ExtractLinks(sourceFile string, html string) ([]docload.ExtractedLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docload.Errorf(docload.EINVALID, "failed to parse HTML in %s: %v", sourceFile, err)
	}

	var links []docload.ExtractedLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if !isHTTPURL(href) {
			return
		}

		links = append(links, docload.ExtractedLink{
			URL:        href,
			Context:    strings.TrimSpace(sel.Text()),
			SourceFile: sourceFile,
		})
	})

	return links, nil
}

// isHTTPURL checks whether href is an absolute http(s) URL.
func isHTTPURL(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range []string{"http://", "https://"} {
		if strings.HasPrefix(lower, prefix) && len(href) > len(prefix) {
			return true
		}
	}
	return false
}
