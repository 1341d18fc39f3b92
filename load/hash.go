package load

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes a short content hash using xxhash. Reports carry
// it so identical condensed content is recognizable across runs.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
