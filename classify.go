package docload

import "strings"

// Classification caps. Links matching a tier whose cap is already full are
// evaluated against the remaining rules instead of being dropped.
const (
	DefaultP0Cap = 6
	DefaultP1Cap = 6
)

// Reserved scope values. Any other scope string names a feature and
// matches URLs by substring.
const (
	ScopeCore = "core"
	ScopeAll  = "all"
)

// Keyword tables for the tier rules. All matching is done against the
// lowercased URL.
var (
	p0Keywords     = []string{"overview", "introduction", "quickstart", "getting-started"}
	p0PathSuffixes = []string{"/docs", "/api", "/sdk"}
	p1Segments     = []string{"docs/", "api/", "guide/", "tutorial/"}
	p2Keywords     = []string{"advanced", "reference", "migration", "best-practices"}
)

// NormalizeScope trims the scope and maps the empty string to ScopeCore.
func NormalizeScope(scope string) string {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return ScopeCore
	}
	return scope
}

// Classifier assigns priority tiers to extracted links. Rules are
// evaluated top-down and the first match wins; a full tier hands the link
// to the next rule rather than dropping it.
type Classifier struct {
	// P0Cap and P1Cap bound how many links each tier admits.
	// Values <= 0 fall back to the defaults.
	P0Cap int
	P1Cap int
}

// Classification is the result of classifying a link set for one scope.
// It is computed once before any fetching starts and never changes while
// the run is in flight.
type Classification struct {
	// Scope is the normalized scope the links were classified under.
	Scope string `json:"scope"`

	// Links holds every classified link in first-discovery order,
	// including excluded ones.
	Links []ClassifiedLink `json:"links"`
}

// Tier returns the links assigned to tier, in first-discovery order.
func (c *Classification) Tier(tier Tier) []ClassifiedLink {
	var out []ClassifiedLink
	for _, link := range c.Links {
		if link.Tier == tier {
			out = append(out, link)
		}
	}
	return out
}

// Excluded returns the links that fell outside the scope.
func (c *Classification) Excluded() []ClassifiedLink {
	return c.Tier(TierExcluded)
}

// Classify assigns a tier to every link, preserving order. Identical
// inputs always produce an identical classification.
func (c *Classifier) Classify(links []ExtractedLink, scope string) *Classification {
	scope = NormalizeScope(scope)

	p0Cap := c.P0Cap
	if p0Cap <= 0 {
		p0Cap = DefaultP0Cap
	}
	p1Cap := c.P1Cap
	if p1Cap <= 0 {
		p1Cap = DefaultP1Cap
	}

	cls := &Classification{Scope: scope, Links: make([]ClassifiedLink, 0, len(links))}
	p0, p1 := 0, 0
	for _, link := range links {
		tier, rule := classifyURL(link.URL, scope, p0 < p0Cap, p1 < p1Cap)
		switch tier {
		case TierP0:
			p0++
		case TierP1:
			p1++
		}
		cls.Links = append(cls.Links, ClassifiedLink{
			ExtractedLink: link,
			Tier:          tier,
			MatchedRule:   rule,
		})
	}
	return cls
}

// ClassifyURL evaluates the tier rules for a single URL under the given
// scope, ignoring caps. Useful for answering "why did this link land
// where it did" without rerunning a whole classification.
func ClassifyURL(url, scope string) (Tier, string) {
	return classifyURL(url, NormalizeScope(scope), true, true)
}

// classifyURL walks the rule chain top-down. p0Open and p1Open report
// whether the respective tier still has room; a closed tier's rules are
// skipped so the link falls through to the next rule.
func classifyURL(rawURL, scope string, p0Open, p1Open bool) (Tier, string) {
	url := strings.ToLower(rawURL)

	// P0: essential entry points, regardless of scope.
	if p0Open {
		for _, kw := range p0Keywords {
			if strings.Contains(url, kw) {
				return TierP0, "p0:keyword:" + kw
			}
		}
		for _, suffix := range p0PathSuffixes {
			if hasPathSuffix(url, suffix) {
				return TierP0, "p0:path:" + suffix
			}
		}
	}

	// P1: feature-specific pages, skipped entirely for the core scope.
	if scope != ScopeCore && p1Open {
		if scope == ScopeAll || strings.Contains(url, strings.ToLower(scope)) {
			for _, seg := range p1Segments {
				if strings.Contains(url, seg) {
					return TierP1, "p1:segment:" + seg
				}
			}
		}
	}

	// P2: advanced material, only when everything is in scope.
	if scope == ScopeAll {
		for _, kw := range p2Keywords {
			if strings.Contains(url, kw) {
				return TierP2, "p2:keyword:" + kw
			}
		}
	}

	return TierExcluded, "excluded"
}

// hasPathSuffix reports whether the URL path ends exactly with the given
// segment, ignoring any query, fragment, and a single trailing slash.
// "https://x.io/api" matches "/api"; "https://x.io/api/reference" and
// "https://x.io/webapi" do not.
func hasPathSuffix(url, suffix string) bool {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	url = strings.TrimSuffix(url, "/")
	return strings.HasSuffix(url, suffix)
}
