package mock

import (
	"context"

	"github.com/docload/docload"
)

var _ docload.Condenser = (*Condenser)(nil)

// Condenser is a mock implementation of docload.Condenser.
type Condenser struct {
	CondenseFn func(ctx context.Context, content string, instruction string) (string, error)
}

func (c *Condenser) Condense(ctx context.Context, content string, instruction string) (string, error) {
	return c.CondenseFn(ctx, content, instruction)
}
