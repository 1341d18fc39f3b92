package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/docload/docload"
	"github.com/docload/docload/mock"
	docslog "github.com/docload/docload/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRetriever_Retrieve(t *testing.T) {
	t.Parallel()

	t.Run("logs url with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Retriever{
			RetrieveFn: func(ctx context.Context, url string, instruction string) (string, error) {
				return "# Overview\n\nCondensed.", nil
			},
		}

		retriever := docslog.NewLoggingRetriever(inner, logger)
		content, err := retriever.Retrieve(context.Background(), "https://x.io/overview", "keep the essentials")

		require.NoError(t, err)
		assert.NotEmpty(t, content)
		output := buf.String()
		assert.Contains(t, output, "retrieve")
		assert.Contains(t, output, "url=https://x.io/overview")
		assert.Contains(t, output, "bytes=22")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Retriever{
			RetrieveFn: func(ctx context.Context, url string, instruction string) (string, error) {
				return "", docload.Errorf(docload.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}

		retriever := docslog.NewLoggingRetriever(inner, logger)
		_, err := retriever.Retrieve(context.Background(), "https://x.io/api", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "HTTP 503")
	})
}
