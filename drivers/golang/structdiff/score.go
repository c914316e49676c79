package structdiff

import (
	"github.com/emenda-labs/swapcheck/core/compat"
	"github.com/emenda-labs/swapcheck/drivers/golang/fingerprint"
)

// Score reduces the three scoreable diff reports to a single value in
// [0, 100]: the share of the original's functions, types and variables
// found compatible in the candidate. An original with no scoreable
// declarations scores 100 regardless of the candidate.
func Score(original *fingerprint.SourceFingerprint, functions, types, variables compat.DiffReport) float64 {
	total := original.DeclaredCount()
	if total == 0 {
		return 100.0
	}

	compatible := len(functions.Compatible) + len(types.Compatible) + len(variables.Compatible)
	return float64(compatible) / float64(total) * 100.0
}
