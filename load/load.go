// Package load provides load run orchestration. It coordinates scanning a
// documentation set, extracting and classifying external links, retrieving
// their content tier by tier, and assembling the final report.
package load

import (
	"context"
	"fmt"
	"strings"

	"github.com/docload/docload"
	"github.com/google/uuid"
)

// Loader orchestrates a documentation link load run.
type Loader struct {
	// Store lists and reads the source documents. Required.
	Store docload.DocumentStore

	// Retriever retrieves and condenses linked content. Required unless
	// only Plan is used.
	Retriever docload.Retriever

	// HTMLLinks extracts links from HTML documents. Optional; without it
	// HTML files are scanned like plain text.
	HTMLLinks docload.HTMLLinkExtractor

	// Limiter rate-limits retrievals per domain. Optional.
	Limiter docload.DomainLimiter

	// Tokens sizes condensed content for the report summary. Optional.
	Tokens docload.TokenCounter

	// Instructions supplies per-tier condensing instructions.
	// Defaults to docload.DefaultTierInstructions().
	Instructions docload.TierInstructions

	// Progress, if provided, receives events as the run proceeds.
	Progress ProgressFunc
}

// ProgressEvent reports progress during a load run.
type ProgressEvent struct {
	Type      ProgressType
	Tier      docload.Tier
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressTierStarted
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting load progress.
type ProgressFunc func(event ProgressEvent)

// Run executes a full load: scan, extract, classify, fetch, aggregate.
// Only a failure to list the document set aborts with an error; unreadable
// files, fetch failures, and an expiring time budget all degrade into the
// returned report instead.
func (l *Loader) Run(ctx context.Context, input docload.RunInput) (*docload.LoadReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.TimeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, input.TimeBudget)
		defer cancel()
	}

	cls, skipped, err := l.plan(ctx, input)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, tier := range fetchableTiers(cls.Scope) {
		total += len(cls.Tier(tier))
	}
	l.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	results, truncated := l.fetchTiers(ctx, cls, input)

	report := docload.BuildReport(uuid.New().String(), cls, results, skipped, truncated)

	l.emit(ProgressEvent{Type: ProgressFinished, Completed: len(results), Total: total})
	return report, nil
}

// Plan scans and classifies without fetching anything. It returns the
// classification and any skipped-file warnings, and is what preview mode
// is built on.
func (l *Loader) Plan(ctx context.Context, input docload.RunInput) (*docload.Classification, []docload.FileWarning, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}
	return l.plan(ctx, input)
}

func (l *Loader) plan(ctx context.Context, input docload.RunInput) (*docload.Classification, []docload.FileWarning, error) {
	// Scan. An inaccessible document set is the only fatal condition.
	paths, err := l.Store.ListFiles(ctx, input.DocsRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", input.DocsRoot, err)
	}

	// Extract. Unreadable files become warnings, not failures.
	set := docload.NewLinkSet()
	var skipped []docload.FileWarning
	for _, path := range paths {
		content, err := l.Store.ReadFile(ctx, path)
		if err != nil {
			skipped = append(skipped, docload.FileWarning{Path: path, Err: err.Error()})
			continue
		}
		for _, link := range l.extractFile(path, content) {
			if !input.Filter.Match(link.URL) {
				continue
			}
			set.Add(link)
		}
	}

	// Classify once. The classification never changes while fetches are
	// in flight.
	classifier := &docload.Classifier{P0Cap: input.P0Cap, P1Cap: input.P1Cap}
	return classifier.Classify(set.Links(), input.Scope), skipped, nil
}

// extractFile picks the extraction strategy for one document. HTML files
// go through the HTML extractor when one is configured, with the text
// scanner as fallback for unparseable input.
func (l *Loader) extractFile(path, content string) []docload.ExtractedLink {
	if l.HTMLLinks != nil && isHTMLPath(path) {
		if links, err := l.HTMLLinks.ExtractLinks(path, content); err == nil {
			return links
		}
	}
	return docload.ExtractFileLinks(path, content)
}

func isHTMLPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

func (l *Loader) emit(event ProgressEvent) {
	if l.Progress != nil {
		l.Progress(event)
	}
}
