package docload

import "encoding/json"

// Tier represents a link's fetch priority (lower = fetched earlier).
type Tier int

// Priority tiers in scheduling order. TierExcluded marks links outside the
// requested scope; they are reported but never fetched.
const (
	TierP0       Tier = 0
	TierP1       Tier = 1
	TierP2       Tier = 2
	TierExcluded Tier = 3
)

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case TierP0:
		return "P0"
	case TierP1:
		return "P1"
	case TierP2:
		return "P2"
	case TierExcluded:
		return "excluded"
	}
	return "unknown"
}

// MarshalJSON renders the tier as its display name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses a tier from its display name.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "P0":
		*t = TierP0
	case "P1":
		*t = TierP1
	case "P2":
		*t = TierP2
	case "excluded":
		*t = TierExcluded
	default:
		return Errorf(EINVALID, "unknown tier %q", name)
	}
	return nil
}

// ExtractedLink represents an external reference discovered in a source
// document.
type ExtractedLink struct {
	URL string `json:"url"`

	// Context is the description surrounding the link at its first
	// occurrence, e.g. the bracketed text of a markdown link or the text
	// of an HTML anchor. Empty for bare URLs.
	Context string `json:"context,omitempty"`

	// SourceFile is the document the link was first discovered in.
	SourceFile string `json:"sourceFile"`

	// Position is the link's index in first-discovery order across the
	// whole document set. Assigned on admission to a LinkSet.
	Position int `json:"position"`
}

// ClassifiedLink is an extracted link with its assigned tier.
type ClassifiedLink struct {
	ExtractedLink

	Tier Tier `json:"tier"`

	// MatchedRule names the classification rule that assigned the tier,
	// e.g. "p0:keyword:quickstart" or "p1:segment:docs/".
	MatchedRule string `json:"matchedRule"`
}

// HTMLLinkExtractor extracts external references from HTML documents.
type HTMLLinkExtractor interface {
	// ExtractLinks parses HTML and returns discovered links in document
	// order, with anchor text as context. Only absolute http(s) URLs are
	// returned; deduplication across documents is left to the caller.
	ExtractLinks(sourceFile string, html string) ([]ExtractedLink, error)
}
