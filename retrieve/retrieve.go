// Package retrieve implements the retrieval pipeline behind the
// docload.Retriever interface: fetch raw HTML, extract the main content,
// convert it to markdown, and condense it with a per-tier instruction.
package retrieve

import (
	"context"
	"errors"
	"strings"

	"github.com/docload/docload"
)

var _ docload.Retriever = (*Retriever)(nil)

// Retriever composes a Fetcher, Extractor, Converter, and optional
// Condenser into the single retrieve-and-condense capability the loader
// depends on. Each call makes exactly one attempt; retry policy, if any,
// belongs to the caller.
type Retriever struct {
	Fetcher   docload.Fetcher
	Extractor docload.Extractor
	Converter docload.Converter

	// Fallback is an optional second extractor, tried when Extractor
	// fails or finds no content in the page.
	Fallback docload.Extractor

	// Condenser is optional. Without one, Retrieve returns the converted
	// markdown as-is.
	Condenser docload.Condenser
}

// Retrieve fetches the URL, reduces the page to main-content markdown,
// and condenses it according to the instruction. Transport failures map
// to EUNAVAILABLE (ETIMEDOUT when the deadline fired); unusable content
// maps to EINVALID.
func (r *Retriever) Retrieve(ctx context.Context, url string, instruction string) (string, error) {
	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fetchError(url, err)
	}

	extracted, err := r.extract(html)
	if err != nil {
		return "", docload.Errorf(docload.EINVALID, "extract %s: %v", url, err)
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", docload.Errorf(docload.EINVALID, "convert %s: %v", url, err)
	}
	if strings.TrimSpace(markdown) == "" {
		return "", docload.Errorf(docload.EINVALID, "no usable content at %s", url)
	}

	if r.Condenser == nil {
		return markdown, nil
	}

	condensed, err := r.Condenser.Condense(ctx, markdown, instruction)
	if err != nil {
		return "", err
	}
	return condensed, nil
}

// extract runs the primary extractor and falls back to the secondary one
// when the primary fails or comes back empty. A fallback failure never
// masks the primary outcome.
func (r *Retriever) extract(html string) (*docload.ExtractResult, error) {
	extracted, err := r.Extractor.Extract(html)
	if err == nil && strings.TrimSpace(extracted.ContentHTML) != "" {
		return extracted, nil
	}
	if r.Fallback != nil {
		if fallback, ferr := r.Fallback.Extract(html); ferr == nil {
			return fallback, nil
		}
	}
	return extracted, err
}

// fetchError classifies a transport failure, preserving the code of an
// application error when the fetcher supplied one.
func fetchError(url string, err error) error {
	code := docload.EUNAVAILABLE
	if errors.Is(err, context.DeadlineExceeded) {
		code = docload.ETIMEDOUT
	}

	var appErr *docload.Error
	if errors.As(err, &appErr) {
		if appErr.Code != docload.EINTERNAL {
			code = appErr.Code
		}
		return docload.Errorf(code, "fetch %s: %s", url, appErr.Message)
	}
	return docload.Errorf(code, "fetch %s: %v", url, err)
}
