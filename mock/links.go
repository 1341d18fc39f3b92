package mock

import "github.com/docload/docload"

var _ docload.HTMLLinkExtractor = (*HTMLLinkExtractor)(nil)

// HTMLLinkExtractor is a mock implementation of docload.HTMLLinkExtractor.
type HTMLLinkExtractor struct {
	ExtractLinksFn func(sourceFile string, html string) ([]docload.ExtractedLink, error)
}

func (e *HTMLLinkExtractor) ExtractLinks(sourceFile string, html string) ([]docload.ExtractedLink, error) {
	return e.ExtractLinksFn(sourceFile, html)
}
