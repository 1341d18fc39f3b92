package mock

import (
	"context"

	"github.com/docload/docload"
)

var _ docload.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of docload.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, url string, instruction string) (string, error)
}

func (r *Retriever) Retrieve(ctx context.Context, url string, instruction string) (string, error) {
	return r.RetrieveFn(ctx, url, instruction)
}
