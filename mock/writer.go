package mock

import (
	"context"

	"github.com/docload/docload"
)

var _ docload.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of docload.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *docload.Page) error
}

func (w *PageWriter) WritePage(ctx context.Context, page *docload.Page) error {
	return w.WritePageFn(ctx, page)
}
