package load

import (
	"context"
	"errors"
	"net/url"

	"github.com/docload/docload"
	"golang.org/x/sync/errgroup"
)

// fetchableTiers returns the tiers the scope admits, in execution order.
// P0 is always fetched; P1 needs a non-core scope; P2 needs the all scope.
func fetchableTiers(scope string) []docload.Tier {
	tiers := []docload.Tier{docload.TierP0}
	if scope != docload.ScopeCore {
		tiers = append(tiers, docload.TierP1)
	}
	if scope == docload.ScopeAll {
		tiers = append(tiers, docload.TierP2)
	}
	return tiers
}

// fetchTiers drives retrieval tier by tier. Tiers run strictly
// sequentially; within a tier, links are split into sub-batches of at most
// input.Concurrency and every call in a sub-batch settles before the next
// sub-batch starts. Cancellation and the time budget are observed between
// sub-batches: settled results are kept and the run is reported truncated.
func (l *Loader) fetchTiers(ctx context.Context, cls *docload.Classification, input docload.RunInput) ([]docload.FetchResult, bool) {
	concurrency := input.Concurrency
	if concurrency <= 0 {
		concurrency = docload.DefaultConcurrency
	}
	instructions := l.Instructions
	if instructions == nil {
		instructions = docload.DefaultTierInstructions()
	}

	total := 0
	for _, tier := range fetchableTiers(cls.Scope) {
		total += len(cls.Tier(tier))
	}

	var results []docload.FetchResult
	completed := 0

	for _, tier := range fetchableTiers(cls.Scope) {
		links := cls.Tier(tier)
		if len(links) == 0 {
			continue
		}
		if ctx.Err() != nil {
			return results, true
		}

		l.emit(ProgressEvent{Type: ProgressTierStarted, Tier: tier, Completed: completed, Total: total})
		instruction := instructions.Instruction(tier)

		for start := 0; start < len(links); start += concurrency {
			if ctx.Err() != nil {
				return results, true
			}

			end := min(start+concurrency, len(links))
			batch := l.fetchBatch(ctx, links[start:end], instruction)

			for _, res := range batch {
				completed++
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Tier:      tier,
					Completed: completed,
					Total:     total,
					URL:       res.Link.URL,
				}
				if res.Status == docload.StatusFailure {
					event.Type = ProgressFailed
					event.Error = docload.Errorf(res.ErrCode, "%s", res.Err)
				}
				l.emit(event)
			}
			results = append(results, batch...)
		}
	}

	return results, ctx.Err() != nil
}

// batchResult keys a settled result back to its sub-batch slot.
type batchResult struct {
	slot   int
	result docload.FetchResult
}

// fetchBatch issues every retrieval in the sub-batch concurrently and
// waits for all of them to settle. Results flow through a channel and are
// reassembled by slot, so the returned slice is in sub-batch order no
// matter how the calls interleave.
func (l *Loader) fetchBatch(ctx context.Context, links []docload.ClassifiedLink, instruction string) []docload.FetchResult {
	resultCh := make(chan batchResult, len(links))

	g, gctx := errgroup.WithContext(ctx)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			resultCh <- batchResult{slot: i, result: l.retrieveOne(gctx, link, instruction)}
			return nil
		})
	}
	_ = g.Wait()
	close(resultCh)

	results := make([]docload.FetchResult, len(links))
	for br := range resultCh {
		results[br.slot] = br.result
	}
	return results
}

// retrieveOne performs a single retrieval attempt and converts any failure
// into a failure-status result. It never aborts the sub-batch and never
// retries.
func (l *Loader) retrieveOne(ctx context.Context, link docload.ClassifiedLink, instruction string) docload.FetchResult {
	result := docload.FetchResult{Link: link, Status: docload.StatusFailure}

	if l.Limiter != nil {
		if host := urlHost(link.URL); host != "" {
			if err := l.Limiter.Wait(ctx, host); err != nil {
				result.Err = errorDetail(err)
				result.ErrCode = docload.ErrorCode(err)
				return result
			}
		}
	}

	content, err := l.Retriever.Retrieve(ctx, link.URL, instruction)
	if err != nil {
		result.Err = errorDetail(err)
		result.ErrCode = docload.ErrorCode(err)
		return result
	}

	result.Status = docload.StatusSuccess
	result.Content = content
	result.ContentHash = ContentHash(content)
	if l.Tokens != nil {
		if tokens, err := l.Tokens.CountTokens(ctx, content); err == nil {
			result.Tokens = tokens
		}
	}
	return result
}

// errorDetail extracts the human-readable detail from an error, keeping
// the message of application errors free of their code wrapper.
func errorDetail(err error) string {
	var appErr *docload.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// urlHost returns the host component of a URL, or "" if it has none.
func urlHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
