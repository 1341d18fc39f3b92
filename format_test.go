package docload_test

import (
	"testing"

	"github.com/docload/docload"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	t.Parallel()

	t.Run("renders tiers, failures, and the summary line", func(t *testing.T) {
		t.Parallel()

		overview := classifiedLink("https://x.io/overview", docload.TierP0, 0)
		quickstart := classifiedLink("https://x.io/quickstart", docload.TierP0, 1)
		pricing := classifiedLink("https://x.io/pricing", docload.TierExcluded, 2)

		cls := &docload.Classification{
			Scope: "core",
			Links: []docload.ClassifiedLink{overview, quickstart, pricing},
		}
		results := []docload.FetchResult{
			successResult(overview, "content", 42),
			failureResult(quickstart, "HTTP 503 for https://x.io/quickstart"),
		}
		report := docload.BuildReport("run-1", cls, results, nil, false)

		out := docload.RenderReport(report)

		assert.Contains(t, out, "Link load report (scope: core)")
		assert.Contains(t, out, "Run: run-1")
		assert.Contains(t, out, "P0 (1/2 fetched)")
		assert.Contains(t, out, "ok   https://x.io/overview")
		assert.Contains(t, out, "fail https://x.io/quickstart: HTTP 503")
		assert.Contains(t, out, "Failed (1)")
		assert.Contains(t, out, "Excluded by scope (1)")
		assert.Contains(t, out, "Summary: found 3, attempted 2, succeeded 1, failed 1, excluded 1")
		assert.NotContains(t, out, "[truncated]")
	})

	t.Run("marks truncated runs", func(t *testing.T) {
		t.Parallel()

		cls := &docload.Classification{Scope: "all"}
		report := docload.BuildReport("run-2", cls, nil, nil, true)

		out := docload.RenderReport(report)

		assert.Contains(t, out, "[truncated]")
	})

	t.Run("failed section is present even when empty", func(t *testing.T) {
		t.Parallel()

		cls := &docload.Classification{Scope: "core"}
		report := docload.BuildReport("run-3", cls, nil, nil, false)

		out := docload.RenderReport(report)

		assert.Contains(t, out, "Failed (0)")
		assert.Contains(t, out, "Summary: found 0, attempted 0, succeeded 0, failed 0, excluded 0")
	})

	t.Run("renders skipped files", func(t *testing.T) {
		t.Parallel()

		cls := &docload.Classification{Scope: "core"}
		skipped := []docload.FileWarning{{Path: "docs/broken.md", Err: "permission denied"}}
		report := docload.BuildReport("run-4", cls, nil, skipped, false)

		out := docload.RenderReport(report)

		assert.Contains(t, out, "Skipped files (1)")
		assert.Contains(t, out, "docs/broken.md: permission denied")
	})

	t.Run("identical reports render identically", func(t *testing.T) {
		t.Parallel()

		overview := classifiedLink("https://x.io/overview", docload.TierP0, 0)
		cls := &docload.Classification{Scope: "core", Links: []docload.ClassifiedLink{overview}}
		results := []docload.FetchResult{successResult(overview, "content", 10)}

		a := docload.RenderReport(docload.BuildReport("run-5", cls, results, nil, false))
		b := docload.RenderReport(docload.BuildReport("run-5", cls, results, nil, false))

		assert.Equal(t, a, b)
	})
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("keeps the host and path when they fit", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "x.io/docs/overview", docload.TruncateURL("https://x.io/docs/overview", 40))
	})

	t.Run("truncates long paths from the left with an ellipsis", func(t *testing.T) {
		t.Parallel()
		result := docload.TruncateURL("https://docs.x.io/guides/alpha/beta/gamma/delta", 20)
		assert.Equal(t, ".../beta/gamma/delta", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns the display form unchanged when exactly max length", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "x.io/docs", docload.TruncateURL("https://x.io/docs", 9))
	})

	t.Run("right-truncates input without a host", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "not a u...", docload.TruncateURL("not a url but rather a long plain string", 10))
		assert.Equal(t, "plain", docload.TruncateURL("plain", 10))
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docload.TruncateURL("https://x.io/docs", 0))
	})

	t.Run("returns empty string when maxLen is negative", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, docload.TruncateURL("https://x.io/docs", -1))
	})

	t.Run("returns a prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		// maxLen < 4 leaves no room for the "..." marker
		assert.Equal(t, "htt", docload.TruncateURL("https://x.io/docs", 3))
		assert.Equal(t, "ht", docload.TruncateURL("https://x.io/docs", 2))
		assert.Equal(t, "h", docload.TruncateURL("https://x.io/docs", 1))
	})

	t.Run("handles input shorter than a small maxLen", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", docload.TruncateURL("ab", 3))
		assert.Equal(t, "a", docload.TruncateURL("a", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", docload.FormatBytes(512))
	assert.Equal(t, "1.5 KB", docload.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", docload.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~999 tokens", docload.FormatTokens(999))
	assert.Equal(t, "~2k tokens", docload.FormatTokens(1800))
}
