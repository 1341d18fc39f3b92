package docload

import (
	"context"
	"time"
)

// Page represents a retrieved, condensed documentation page ready to be
// persisted.
type Page struct {
	URL       string    `json:"url"`
	Tier      Tier      `json:"tier"`
	Content   string    `json:"content"` // Markdown
	Hash      string    `json:"hash"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// PageWriter persists retrieved pages, e.g. as markdown files under an
// output directory.
type PageWriter interface {
	WritePage(ctx context.Context, page *Page) error
}
