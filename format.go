package docload

import (
	"fmt"
	"net/url"
	"strings"
)

// RenderReport formats a load report for terminal display. The rendering
// is pure: every line is derived from the report struct, so identical
// reports always render identically. The failed section and the summary
// line are present even when empty.
func RenderReport(report *LoadReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Link load report (scope: %s)", report.Scope)
	if report.Truncated {
		sb.WriteString(" [truncated]")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Run: %s\n", report.RunID)

	for _, tier := range report.Tiers {
		succeeded := 0
		for _, res := range tier.Results {
			if res.Status == StatusSuccess {
				succeeded++
			}
		}
		fmt.Fprintf(&sb, "\n%s (%d/%d fetched)\n", tier.Tier, succeeded, len(tier.Results))
		for _, res := range tier.Results {
			switch res.Status {
			case StatusSuccess:
				fmt.Fprintf(&sb, "  ok   %s (%s, %s)\n", res.Link.URL, FormatBytes(len(res.Content)), FormatTokens(res.Tokens))
			default:
				fmt.Fprintf(&sb, "  fail %s: %s\n", res.Link.URL, res.Err)
			}
		}
	}

	fmt.Fprintf(&sb, "\nFailed (%d)\n", len(report.Failed))
	for _, res := range report.Failed {
		fmt.Fprintf(&sb, "  %s: %s\n", res.Link.URL, res.Err)
	}

	if len(report.Excluded) > 0 {
		fmt.Fprintf(&sb, "\nExcluded by scope (%d)\n", len(report.Excluded))
		for _, link := range report.Excluded {
			fmt.Fprintf(&sb, "  %s\n", link.URL)
		}
	}

	if len(report.SkippedFiles) > 0 {
		fmt.Fprintf(&sb, "\nSkipped files (%d)\n", len(report.SkippedFiles))
		for _, warn := range report.SkippedFiles {
			fmt.Fprintf(&sb, "  %s: %s\n", warn.Path, warn.Err)
		}
	}

	fmt.Fprintf(&sb, "\nSummary: found %d, attempted %d, succeeded %d, failed %d, excluded %d (%s, %s)\n",
		report.TotalLinksFound,
		report.Summary.Attempted,
		report.Summary.Succeeded,
		report.Summary.Failed,
		report.Summary.Excluded,
		FormatBytes(report.Summary.Bytes),
		FormatTokens(report.Summary.Tokens),
	)

	return sb.String()
}

// TruncateURL shortens a URL for display. The host is kept because a run
// typically spans many sites; long paths are truncated from the left to
// show the unique suffix.
func TruncateURL(rawURL string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for the "..." marker.
		return rawURL[:min(len(rawURL), maxLen)]
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback to simple right-truncation
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	display := parsed.Host + parsed.Path
	if len(display) <= maxLen {
		return display
	}
	return "..." + display[len(display)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token counts in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}
