package mock

import "github.com/docload/docload"

var _ docload.Converter = (*Converter)(nil)

// Converter is a mock implementation of docload.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
