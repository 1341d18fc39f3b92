package docload

import "context"

// DocumentFile represents a single source document within a scanned set.
type DocumentFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// DocumentStore lists and reads the source documents of a documentation
// set. The loader only ever reads from the store.
type DocumentStore interface {
	// ListFiles returns the paths of all document files under root in a
	// deterministic order, so link discovery order is stable between
	// runs. Returns ENOTFOUND if root does not exist or cannot be read.
	ListFiles(ctx context.Context, root string) ([]string, error)

	// ReadFile returns the content of a single document.
	ReadFile(ctx context.Context, path string) (string, error)
}
