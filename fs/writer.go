// Package fs provides filesystem implementations of the document store
// and page writer.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/docload/docload"
)

// URLToPath converts a page URL to a relative file path. The host becomes
// the top-level directory so pages from different sites cannot collide.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docload.Errorf(docload.EINVALID, "invalid page URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", docload.Errorf(docload.EINVALID, "page URL %q has no host", rawURL)
	}

	path := u.Path

	// Root or trailing slash → index.md
	if path == "" || path == "/" {
		return filepath.Join(u.Host, "index.md"), nil
	}

	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return filepath.Join(u.Host, path, "index.md"), nil
	}

	return filepath.Join(u.Host, path+".md"), nil
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *docload.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntier: ")
	b.WriteString(page.Tier.String())
	b.WriteString("\nhash: ")
	b.WriteString(page.Hash)
	b.WriteString("\nfetched: ")
	b.WriteString(page.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// Ensure Writer implements docload.PageWriter at compile time.
var _ docload.PageWriter = (*Writer)(nil)

// Writer writes pages as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes a page to disk as a markdown file.
func (w *Writer) WritePage(ctx context.Context, page *docload.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatPage(page)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
