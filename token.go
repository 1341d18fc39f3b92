package docload

import "context"

// TokenCounter counts tokens in text for a specific model.
// The loader uses it to size condensed content in the report summary.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
