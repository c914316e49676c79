package driver

import (
	"context"

	"github.com/emenda-labs/swapcheck/core/compat"
)

// LanguageAnalyzer is the interface each language must implement to
// support interchangeability validation.
type LanguageAnalyzer interface {
	// Analyze parses both source files and returns the structural
	// comparison. It fails only when a file is unreadable or fails to
	// parse; every other problem is recorded inside the analysis.
	Analyze(ctx context.Context, originalPath, candidatePath string) (*compat.StructuralAnalysis, error)

	// RunDifferential executes shared functions from both files in
	// isolated sandboxes and returns one verdict per synthesized case.
	// It never fails for per-function problems; functions that cannot
	// be loaded or resolved contribute zero verdicts. Analyze must have
	// succeeded for the same paths first.
	RunDifferential(ctx context.Context, originalPath, candidatePath string) ([]compat.DifferentialVerdict, error)
}
