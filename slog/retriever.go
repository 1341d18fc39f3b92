package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docload/docload"
)

// Ensure LoggingRetriever implements docload.Retriever.
var _ docload.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with per-URL logging.
type LoggingRetriever struct {
	next   docload.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next docload.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever and logs the operation.
func (r *LoggingRetriever) Retrieve(ctx context.Context, url string, instruction string) (content string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("retrieve",
			"url", url,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Retrieve(ctx, url, instruction)
}
