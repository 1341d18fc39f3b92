// Package trafilatura provides a content-extraction implementation of
// docload.Extractor that isolates the main article of a fetched page,
// stripping navigation, sidebars and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/docload/docload"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docload.Extractor at compile time.
var _ docload.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Comment
// sections are excluded and in-content links are preserved so that
// references in documentation pages survive conversion.
func (e *Extractor) Extract(rawHTML string) (*docload.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docload.Errorf(docload.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &docload.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
