package docload

import "context"

// Condenser reduces a retrieved page to the parts worth keeping, guided
// by a per-tier instruction.
type Condenser interface {
	// Condense rewrites markdown content according to the instruction.
	// Returns EINVALID if the content is empty.
	Condense(ctx context.Context, content string, instruction string) (string, error)
}
