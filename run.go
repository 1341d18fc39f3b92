package docload

import "time"

// DefaultConcurrency bounds simultaneous retrievals within a sub-batch
// when RunInput.Concurrency is unset.
const DefaultConcurrency = 4

// RunInput carries the caller-supplied parameters for a single load run.
type RunInput struct {
	// Scope selects which tiers and features to include: ScopeCore (or
	// empty), a feature name matched as a URL substring, or ScopeAll.
	Scope string `json:"scope"`

	// DocsRoot is the documentation set location passed to the
	// DocumentStore.
	DocsRoot string `json:"docsRoot"`

	// Concurrency bounds simultaneous retrievals within a sub-batch.
	// Values <= 0 fall back to DefaultConcurrency.
	Concurrency int `json:"concurrency"`

	// P0Cap and P1Cap bound tier admission. Values <= 0 fall back to
	// DefaultP0Cap and DefaultP1Cap.
	P0Cap int `json:"p0Cap"`
	P1Cap int `json:"p1Cap"`

	// TimeBudget bounds the whole run. Zero means no budget.
	TimeBudget time.Duration `json:"timeBudget"`

	// Filter optionally narrows which discovered URLs are considered.
	Filter *URLFilter `json:"-"`
}

// Validate returns an error if the input cannot start a run.
func (in *RunInput) Validate() error {
	if in.DocsRoot == "" {
		return Errorf(EINVALID, "docs root required")
	}
	if in.TimeBudget < 0 {
		return Errorf(EINVALID, "time budget must not be negative")
	}
	return nil
}

// TierInstructions maps each fetchable tier to the condensing instruction
// used for links of that tier.
type TierInstructions map[Tier]string

// Instruction returns the instruction for a tier, falling back to the P0
// instruction when the tier has none.
func (ti TierInstructions) Instruction(tier Tier) string {
	if s, ok := ti[tier]; ok {
		return s
	}
	return ti[TierP0]
}

// DefaultTierInstructions returns the standard per-tier condensing
// instructions.
func DefaultTierInstructions() TierInstructions {
	return TierInstructions{
		TierP0: "Condense this page to the essential concepts, setup steps, and core usage examples a newcomer needs first.",
		TierP1: "Condense this page to the feature-specific guidance it documents: configuration, usage patterns, and caveats.",
		TierP2: "Condense this page to the advanced details worth keeping: edge cases, migration notes, and reference tables.",
	}
}
