package docload

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// Matches markdown-style bracketed links: [text](target).
	bracketLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)

	// Matches bare http(s) URLs up to whitespace or markup delimiters.
	bareURLRe = regexp.MustCompile(`https?://[^\s<>"']+`)
)

// ExtractFileLinks scans a single markdown or plain-text document and
// returns its external references in document order. Bracketed links
// ([text](url)) contribute their text as context; the remaining text is
// then scanned for bare http(s) URLs, so a URL nested inside a bracketed
// link is never counted twice. Trailing punctuation is stripped from bare
// URLs. Deduplication across documents is left to the caller.
func ExtractFileLinks(path, content string) []ExtractedLink {
	if content == "" {
		return nil
	}

	type candidate struct {
		offset  int
		url     string
		context string
	}
	var found []candidate

	// First pass: bracketed links. Matched regions are blanked out with
	// spaces (preserving offsets) so the bare-URL pass cannot rediscover
	// a URL nested inside the text or target of a bracketed link.
	masked := []byte(content)
	for _, m := range bracketLinkRe.FindAllStringSubmatchIndex(content, -1) {
		text := content[m[2]:m[3]]
		target := content[m[4]:m[5]]
		if isHTTPURL(target) {
			found = append(found, candidate{
				offset:  m[0],
				url:     target,
				context: strings.TrimSpace(text),
			})
		}
		for i := m[0]; i < m[1]; i++ {
			masked[i] = ' '
		}
	}

	// Second pass: bare URLs in the remaining text.
	remaining := string(masked)
	for _, m := range bareURLRe.FindAllStringIndex(remaining, -1) {
		url := strings.TrimRight(remaining[m[0]:m[1]], ".,)")
		if !isHTTPURL(url) {
			continue
		}
		found = append(found, candidate{offset: m[0], url: url})
	}

	// Restore in-file order across both passes.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].offset < found[j].offset
	})

	links := make([]ExtractedLink, 0, len(found))
	for _, c := range found {
		links = append(links, ExtractedLink{
			URL:        c.url,
			Context:    c.context,
			SourceFile: path,
		})
	}
	return links
}

// isHTTPURL reports whether s is an absolute http(s) URL with a non-empty
// remainder after the scheme.
func isHTTPURL(s string) bool {
	for _, prefix := range []string{"http://", "https://"} {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return true
		}
	}
	return false
}

// LinkSet accumulates extracted links across a document set, deduplicating
// by exact URL string. The first occurrence of a URL wins: its context and
// source file are kept and later sightings are dropped. Positions are
// assigned in admission order, so the set's links are always in
// first-discovery order.
type LinkSet struct {
	seen  map[string]struct{}
	links []ExtractedLink
}

// NewLinkSet returns an empty LinkSet.
func NewLinkSet() *LinkSet {
	return &LinkSet{seen: make(map[string]struct{})}
}

// Add admits a link unless its URL has been seen before. It returns true
// if the link was admitted. The link's Position is overwritten with its
// discovery index.
func (s *LinkSet) Add(link ExtractedLink) bool {
	if _, ok := s.seen[link.URL]; ok {
		return false
	}
	s.seen[link.URL] = struct{}{}
	link.Position = len(s.links)
	s.links = append(s.links, link)
	return true
}

// Links returns the admitted links in first-discovery order.
func (s *LinkSet) Links() []ExtractedLink {
	return s.links
}

// Len returns the number of admitted links.
func (s *LinkSet) Len() int {
	return len(s.links)
}
