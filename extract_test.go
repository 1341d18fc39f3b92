package docload_test

import (
	"testing"

	"github.com/docload/docload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFileLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts bracketed link with text as context", func(t *testing.T) {
		t.Parallel()

		content := "See the [Payment Guide](https://x.io/docs/payments) for details."

		links := docload.ExtractFileLinks("readme.md", content)

		require.Len(t, links, 1)
		assert.Equal(t, "https://x.io/docs/payments", links[0].URL)
		assert.Equal(t, "Payment Guide", links[0].Context)
		assert.Equal(t, "readme.md", links[0].SourceFile)
	})

	t.Run("extracts bare URL with empty context", func(t *testing.T) {
		t.Parallel()

		content := "Start at https://x.io/quickstart before anything else."

		links := docload.ExtractFileLinks("readme.md", content)

		require.Len(t, links, 1)
		assert.Equal(t, "https://x.io/quickstart", links[0].URL)
		assert.Empty(t, links[0].Context)
	})

	t.Run("strips trailing punctuation from bare URLs", func(t *testing.T) {
		t.Parallel()

		content := "Read https://x.io/overview. Then (https://x.io/api), done."

		links := docload.ExtractFileLinks("notes.txt", content)

		require.Len(t, links, 2)
		assert.Equal(t, "https://x.io/overview", links[0].URL)
		assert.Equal(t, "https://x.io/api", links[1].URL)
	})

	t.Run("does not double count URL nested inside bracketed link", func(t *testing.T) {
		t.Parallel()

		content := "[https://x.io/docs](https://x.io/docs)"

		links := docload.ExtractFileLinks("readme.md", content)

		require.Len(t, links, 1)
		assert.Equal(t, "https://x.io/docs", links[0].URL)
	})

	t.Run("ignores relative bracketed links", func(t *testing.T) {
		t.Parallel()

		content := "See [the local page](./other.md) and [Docs](https://x.io/docs)."

		links := docload.ExtractFileLinks("readme.md", content)

		require.Len(t, links, 1)
		assert.Equal(t, "https://x.io/docs", links[0].URL)
	})

	t.Run("preserves in-file order across both passes", func(t *testing.T) {
		t.Parallel()

		content := "First https://x.io/a then [B](https://x.io/b) then https://x.io/c."

		links := docload.ExtractFileLinks("readme.md", content)

		require.Len(t, links, 3)
		assert.Equal(t, "https://x.io/a", links[0].URL)
		assert.Equal(t, "https://x.io/b", links[1].URL)
		assert.Equal(t, "https://x.io/c", links[2].URL)
	})

	t.Run("returns nil for content without links", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docload.ExtractFileLinks("readme.md", "no links here"))
		assert.Nil(t, docload.ExtractFileLinks("readme.md", ""))
	})

	t.Run("accepts http as well as https", func(t *testing.T) {
		t.Parallel()

		links := docload.ExtractFileLinks("readme.md", "legacy http://x.io/docs here")

		require.Len(t, links, 1)
		assert.Equal(t, "http://x.io/docs", links[0].URL)
	})
}

func TestLinkSet(t *testing.T) {
	t.Parallel()

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()

		set := docload.NewLinkSet()

		admitted := set.Add(docload.ExtractedLink{URL: "https://x.io/docs", Context: "first", SourceFile: "a.md"})
		require.True(t, admitted)

		admitted = set.Add(docload.ExtractedLink{URL: "https://x.io/docs", Context: "second", SourceFile: "b.md"})
		assert.False(t, admitted)

		links := set.Links()
		require.Len(t, links, 1)
		assert.Equal(t, "first", links[0].Context)
		assert.Equal(t, "a.md", links[0].SourceFile)
	})

	t.Run("assigns positions in admission order", func(t *testing.T) {
		t.Parallel()

		set := docload.NewLinkSet()
		set.Add(docload.ExtractedLink{URL: "https://x.io/a"})
		set.Add(docload.ExtractedLink{URL: "https://x.io/b"})
		set.Add(docload.ExtractedLink{URL: "https://x.io/a"}) // duplicate
		set.Add(docload.ExtractedLink{URL: "https://x.io/c"})

		links := set.Links()
		require.Len(t, links, 3)
		assert.Equal(t, 0, links[0].Position)
		assert.Equal(t, 1, links[1].Position)
		assert.Equal(t, 2, links[2].Position)
		assert.Equal(t, 3, set.Len())
	})

	t.Run("distinguishes URLs differing only in fragment", func(t *testing.T) {
		t.Parallel()

		set := docload.NewLinkSet()
		set.Add(docload.ExtractedLink{URL: "https://x.io/docs"})
		set.Add(docload.ExtractedLink{URL: "https://x.io/docs#install"})

		assert.Equal(t, 2, set.Len())
	})
}
