package mock

import (
	"context"

	"github.com/docload/docload"
)

var _ docload.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of docload.DocumentStore.
type DocumentStore struct {
	ListFilesFn func(ctx context.Context, root string) ([]string, error)
	ReadFileFn  func(ctx context.Context, path string) (string, error)
}

func (s *DocumentStore) ListFiles(ctx context.Context, root string) ([]string, error) {
	return s.ListFilesFn(ctx, root)
}

func (s *DocumentStore) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}
