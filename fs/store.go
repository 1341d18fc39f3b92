package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docload/docload"
)

// Document file extensions the store considers part of a documentation
// set. Everything else is skipped during the walk.
var docExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdx":      true,
	".txt":      true,
	".rst":      true,
	".html":     true,
	".htm":      true,
}

// Ensure Store implements docload.DocumentStore at compile time.
var _ docload.DocumentStore = (*Store)(nil)

// Store reads a documentation set from a directory tree.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ListFiles walks root and returns every document file in lexical order,
// so link discovery order is stable between runs. A root that does not
// exist or cannot be read returns ENOTFOUND; unreadable subdirectories
// deeper in the tree are skipped. A root that is itself a document file
// is returned as a single-entry listing.
func (s *Store) ListFiles(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, docload.Errorf(docload.ENOTFOUND, "docs root %q not accessible: %v", root, err)
	}

	if !info.IsDir() {
		if !isDocPath(root) {
			return nil, docload.Errorf(docload.EINVALID, "docs root %q is not a documentation file", root)
		}
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isDocPath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, docload.Errorf(docload.ENOTFOUND, "docs root %q not accessible: %v", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadFile returns the content of a single document.
func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", docload.Errorf(docload.EINTERNAL, "read %s: %v", path, err)
	}
	return string(raw), nil
}

// isDocPath reports whether the path has a documentation file extension.
func isDocPath(path string) bool {
	return docExtensions[strings.ToLower(filepath.Ext(path))]
}
