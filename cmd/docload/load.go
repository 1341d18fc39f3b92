package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/docload/docload"
	"github.com/docload/docload/load"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runLoad(deps)
}

func (c *LoadCmd) runPreview(deps *Dependencies) error {
	cls, skipped, err := deps.Loader.Plan(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docload.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, cls)
	}

	for _, link := range cls.Links {
		fmt.Fprintf(deps.Stdout, "%-8s %-22s %s\n", link.Tier, link.MatchedRule, link.URL)
	}
	for _, warning := range skipped {
		fmt.Fprintf(deps.Stderr, "skip %s: %s\n", warning.Path, warning.Err)
	}

	return nil
}

func (c *LoadCmd) runLoad(deps *Dependencies) error {
	// Report progress as links settle
	deps.Loader.Progress = func(e load.ProgressEvent) {
		switch e.Type {
		case load.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.URL, e.Error)
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, docload.TruncateURL(e.URL, 40))
		case load.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, docload.TruncateURL(e.URL, 40))
		}
	}

	report, err := deps.Loader.Run(deps.Ctx, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docload.ErrorMessage(err))
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	if deps.Writer != nil {
		if err := c.writePages(deps, report); err != nil {
			return err
		}
	}

	if c.JSON {
		return printJSON(deps.Stdout, report)
	}

	fmt.Fprint(deps.Stdout, docload.RenderReport(report))
	return nil
}

// writePages persists every successful result through the page writer.
func (c *LoadCmd) writePages(deps *Dependencies, report *docload.LoadReport) error {
	saved := 0
	for _, tier := range report.Tiers {
		for _, res := range tier.Results {
			if res.Status != docload.StatusSuccess {
				continue
			}
			page := &docload.Page{
				URL:       res.Link.URL,
				Tier:      res.Link.Tier,
				Content:   res.Content,
				Hash:      res.ContentHash,
				FetchedAt: time.Now(),
			}
			if err := deps.Writer.WritePage(deps.Ctx, page); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", page.URL, err)
				return err
			}
			saved++
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages\n", saved)
	return nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
