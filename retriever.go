package docload

import "context"

// Retriever retrieves and condenses the content behind a single URL.
// Implementations hide fetching, content extraction, markdown conversion,
// and condensing. A call makes exactly one attempt: it either returns
// usable content or fails terminally for that URL; the scheduler never
// retries.
type Retriever interface {
	Retrieve(ctx context.Context, url string, instruction string) (string, error)
}
