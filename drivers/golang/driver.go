package golang

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/emenda-labs/swapcheck/core/compat"
	"github.com/emenda-labs/swapcheck/core/driver"
	"github.com/emenda-labs/swapcheck/drivers/golang/difftest"
	"github.com/emenda-labs/swapcheck/drivers/golang/fingerprint"
	"github.com/emenda-labs/swapcheck/drivers/golang/sandbox"
	"github.com/emenda-labs/swapcheck/drivers/golang/structdiff"
)

var _ driver.LanguageAnalyzer = (*Driver)(nil)

// Options tunes the Go analyzer.
type Options struct {
	// CallTimeout is the wall-clock deadline for one sandboxed call.
	CallTimeout time.Duration
	// MaxFunctions caps how many shared functions run differentially.
	MaxFunctions int
	// Logger receives debug diagnostics; nil means silent.
	Logger *zap.Logger
}

// Driver implements driver.LanguageAnalyzer for single Go source files.
// Fingerprints are computed once per path and reused between Analyze and
// RunDifferential; there are no retries.
type Driver struct {
	runner *difftest.Runner
	log    *zap.Logger

	fingerprints map[string]*fingerprint.SourceFingerprint
}

// NewDriver builds a Driver with its sandbox loader and executor.
func NewDriver(opts Options) (*Driver, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	loader, err := sandbox.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("building sandbox loader: %w", err)
	}

	exec := difftest.NewExecutor()
	if opts.CallTimeout > 0 {
		exec.Timeout = opts.CallTimeout
		loader.LoadTimeout = opts.CallTimeout
	}

	runner := difftest.NewRunner(loader, exec, log)
	if opts.MaxFunctions > 0 {
		runner.MaxFunctions = opts.MaxFunctions
	}

	return &Driver{
		runner:       runner,
		log:          log,
		fingerprints: make(map[string]*fingerprint.SourceFingerprint),
	}, nil
}

// Analyze extracts both fingerprints and computes the structural diff
// reports and score.
func (d *Driver) Analyze(ctx context.Context, originalPath, candidatePath string) (*compat.StructuralAnalysis, error) {
	orig, err := d.fingerprintFor(ctx, originalPath)
	if err != nil {
		return nil, fmt.Errorf("analyzing original file: %w", err)
	}

	cand, err := d.fingerprintFor(ctx, candidatePath)
	if err != nil {
		return nil, fmt.Errorf("analyzing candidate file: %w", err)
	}

	functions := structdiff.CompareFunctions(orig.Functions, cand.Functions)
	types := structdiff.CompareTypes(orig.Types, cand.Types)
	variables := structdiff.CompareVariables(orig.Variables, cand.Variables)
	imports := structdiff.CompareImports(orig.Imports, cand.Imports)

	return &compat.StructuralAnalysis{
		Original:  fileStats(orig),
		Candidate: fileStats(cand),
		Functions: functions,
		Types:     types,
		Variables: variables,
		Imports:   imports,
		Score:     structdiff.Score(orig, functions, types, variables),
	}, nil
}

// RunDifferential executes the differential battery over the shared
// functions of the two previously analyzed files.
func (d *Driver) RunDifferential(ctx context.Context, originalPath, candidatePath string) ([]compat.DifferentialVerdict, error) {
	orig, err := d.fingerprintFor(ctx, originalPath)
	if err != nil {
		return nil, fmt.Errorf("fingerprinting original file: %w", err)
	}

	cand, err := d.fingerprintFor(ctx, candidatePath)
	if err != nil {
		return nil, fmt.Errorf("fingerprinting candidate file: %w", err)
	}

	return d.runner.Run(ctx, orig, cand), nil
}

// fingerprintFor extracts a fingerprint once per path. Extraction is
// never reattempted within one driver lifetime.
func (d *Driver) fingerprintFor(ctx context.Context, path string) (*fingerprint.SourceFingerprint, error) {
	if fp, ok := d.fingerprints[path]; ok {
		return fp, nil
	}

	d.log.Debug("extracting fingerprint", zap.String("path", path))
	fp, err := fingerprint.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	d.fingerprints[path] = fp
	return fp, nil
}

func fileStats(fp *fingerprint.SourceFingerprint) compat.FileStats {
	return compat.FileStats{
		Path:        fp.Path,
		Module:      fp.Module,
		SizeBytes:   fp.SizeBytes,
		LineCount:   fp.LineCount,
		SyntaxValid: fp.SyntaxValid,
		Importable:  fp.Importable,
	}
}
