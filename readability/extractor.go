// Package readability provides a docload.Extractor based on go-readability.
// It serves as the fallback when trafilatura cannot isolate any content
// from a fetched page.
package readability

import (
	"strings"

	"github.com/docload/docload"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docload.Extractor at compile time.
var _ docload.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docload.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docload.Errorf(docload.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &docload.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
