package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docload/docload"
)

// Ensure LoggingStore implements docload.DocumentStore.
var _ docload.DocumentStore = (*LoggingStore)(nil)

// LoggingStore wraps a DocumentStore with per-operation logging.
type LoggingStore struct {
	next   docload.DocumentStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next docload.DocumentStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// ListFiles delegates to the wrapped store and logs the operation.
func (s *LoggingStore) ListFiles(ctx context.Context, root string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list files",
			"root", root,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListFiles(ctx, root)
}

// ReadFile delegates to the wrapped store and logs the operation.
func (s *LoggingStore) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}
