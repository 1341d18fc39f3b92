package mock

import (
	"context"

	"github.com/docload/docload"
)

var _ docload.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docload.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
