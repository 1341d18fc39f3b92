package docload

import (
	"encoding/json"
	"sort"
)

// FetchStatus represents the outcome of a single retrieval attempt.
type FetchStatus int

// Fetch outcomes. Every scheduled link settles as exactly one of these.
const (
	StatusSuccess FetchStatus = iota
	StatusFailure
)

// String returns the status display name.
func (s FetchStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	}
	return "unknown"
}

// MarshalJSON renders the status as its display name.
func (s FetchStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses a status from its display name.
func (s *FetchStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "success":
		*s = StatusSuccess
	case "failure":
		*s = StatusFailure
	default:
		return Errorf(EINVALID, "unknown fetch status %q", name)
	}
	return nil
}

// FetchResult records the settled outcome of retrieving one classified
// link. A failure carries its error detail; a success carries the
// condensed content with its hash and approximate token count.
type FetchResult struct {
	Link   ClassifiedLink `json:"link"`
	Status FetchStatus    `json:"status"`

	Content     string `json:"content,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
	Tokens      int    `json:"tokens,omitempty"`

	Err     string `json:"err,omitempty"`
	ErrCode string `json:"errCode,omitempty"`
}

// FileWarning records a source document that could not be read during the
// scan. Its links are absent from the run; the run itself continues.
type FileWarning struct {
	Path string `json:"path"`
	Err  string `json:"err"`
}

// TierReport groups one tier's fetch results in first-discovery order.
type TierReport struct {
	Tier    Tier          `json:"tier"`
	Results []FetchResult `json:"results"`
}

// TierCount summarizes one tier's outcomes.
type TierCount struct {
	Tier      Tier `json:"tier"`
	Found     int  `json:"found"`
	Attempted int  `json:"attempted"`
	Succeeded int  `json:"succeeded"`
	Failed    int  `json:"failed"`
}

// Summary aggregates counters across a whole run.
type Summary struct {
	Tiers     []TierCount `json:"tiers"`
	Attempted int         `json:"attempted"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Excluded  int         `json:"excluded"`
	Bytes     int         `json:"bytes"`
	Tokens    int         `json:"tokens"`
}

// LoadReport is the structured outcome of a run. Every run that gets past
// the initial scan produces one; partial results are a normal outcome,
// not an error.
type LoadReport struct {
	RunID string `json:"runId"`
	Scope string `json:"scope"`

	// Truncated is set when a time budget or cancellation stopped the
	// run before every schedulable link was attempted.
	Truncated bool `json:"truncated"`

	TotalLinksFound int `json:"totalLinksFound"`
	TotalAttempted  int `json:"totalAttempted"`

	// Tiers holds per-tier results in fixed tier order. Tiers with no
	// attempted links are omitted.
	Tiers []TierReport `json:"tiers,omitempty"`

	// Failed lists every failed result, ordered by tier then discovery.
	Failed []FetchResult `json:"failed"`

	// Excluded lists the links that fell outside the scope.
	Excluded []ClassifiedLink `json:"excluded"`

	// SkippedFiles lists source documents that could not be read.
	SkippedFiles []FileWarning `json:"skippedFiles,omitempty"`

	Summary Summary `json:"summary"`
}

// BuildReport assembles the report from settled fetch results. Results
// are grouped by tier in fixed order and re-sorted into first-discovery
// order within each tier, which erases any concurrency-dependent
// completion ordering: the same outcomes always produce the same report.
func BuildReport(runID string, cls *Classification, results []FetchResult, skipped []FileWarning, truncated bool) *LoadReport {
	report := &LoadReport{
		RunID:           runID,
		Scope:           cls.Scope,
		Truncated:       truncated,
		TotalLinksFound: len(cls.Links),
		Failed:          []FetchResult{},
		Excluded:        cls.Excluded(),
		SkippedFiles:    skipped,
	}
	if report.Excluded == nil {
		report.Excluded = []ClassifiedLink{}
	}

	byTier := make(map[Tier][]FetchResult)
	for _, res := range results {
		byTier[res.Link.Tier] = append(byTier[res.Link.Tier], res)
	}

	for _, tier := range []Tier{TierP0, TierP1, TierP2} {
		tierResults := byTier[tier]
		sort.SliceStable(tierResults, func(i, j int) bool {
			return tierResults[i].Link.Position < tierResults[j].Link.Position
		})

		count := TierCount{
			Tier:      tier,
			Found:     len(cls.Tier(tier)),
			Attempted: len(tierResults),
		}
		for _, res := range tierResults {
			if res.Status == StatusSuccess {
				count.Succeeded++
				report.Summary.Bytes += len(res.Content)
				report.Summary.Tokens += res.Tokens
			} else {
				count.Failed++
				report.Failed = append(report.Failed, res)
			}
		}

		report.TotalAttempted += count.Attempted
		report.Summary.Tiers = append(report.Summary.Tiers, count)
		report.Summary.Attempted += count.Attempted
		report.Summary.Succeeded += count.Succeeded
		report.Summary.Failed += count.Failed

		if len(tierResults) > 0 {
			report.Tiers = append(report.Tiers, TierReport{Tier: tier, Results: tierResults})
		}
	}

	report.Summary.Excluded = len(report.Excluded)
	return report
}
