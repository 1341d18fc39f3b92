package mock

import "github.com/docload/docload"

var _ docload.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docload.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docload.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docload.ExtractResult, error) {
	return e.ExtractFn(html)
}
