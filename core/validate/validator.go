package validate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emenda-labs/swapcheck/core/compat"
	"github.com/emenda-labs/swapcheck/core/driver"
)

// Options controls one validation run.
type Options struct {
	// Differential enables dynamic execution of shared functions.
	Differential bool
	// Threshold is the interchangeability cutoff for the blended score.
	Threshold float64
}

// DefaultThreshold is the interchangeability cutoff.
const DefaultThreshold = 85.0

// Validator drives a full interchangeability run: structural analysis,
// optional differential execution, and the final verdict.
type Validator struct {
	analyzer driver.LanguageAnalyzer
	opts     Options
	log      *zap.Logger
}

// New builds a Validator around a language analyzer.
func New(analyzer driver.LanguageAnalyzer, opts Options, log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Validator{analyzer: analyzer, opts: opts, log: log}
}

// Validate compares the two files and returns the full result for the
// reporting layer. It fails only when either file cannot be parsed; the
// error names the failing file.
func (v *Validator) Validate(ctx context.Context, originalPath, candidatePath string) (*compat.ValidationResult, error) {
	v.log.Debug("starting validation",
		zap.String("original", originalPath),
		zap.String("candidate", candidatePath),
		zap.Bool("differential", v.opts.Differential))

	analysis, err := v.analyzer.Analyze(ctx, originalPath, candidatePath)
	if err != nil {
		return nil, err
	}

	var verdicts []compat.DifferentialVerdict
	if v.opts.Differential {
		verdicts, err = v.analyzer.RunDifferential(ctx, originalPath, candidatePath)
		if err != nil {
			return nil, fmt.Errorf("running differential tests: %w", err)
		}
		v.log.Debug("differential execution finished", zap.Int("cases", len(verdicts)))
	}

	result := &compat.ValidationResult{
		Structural:   *analysis,
		Differential: verdicts,
		Verdict:      Combine(analysis.Score, verdicts, v.opts.Differential, v.opts.Threshold),
	}

	v.log.Debug("validation finished",
		zap.Float64("structural_score", result.Verdict.StructuralScore),
		zap.Float64("blended_score", result.Verdict.BlendedScore),
		zap.Bool("interchangeable", result.Verdict.Interchangeable))

	return result, nil
}

// Structural and differential weights of the blended score.
const (
	structuralWeight   = 0.7
	differentialWeight = 0.3
)

// Combine blends the structural score with the differential pass rate.
// With differential mode off, or with zero differential cases, the pass
// rate is left undefined and the blend falls back to the structural
// score alone.
func Combine(structuralScore float64, verdicts []compat.DifferentialVerdict, differential bool, threshold float64) compat.FinalVerdict {
	verdict := compat.FinalVerdict{
		StructuralScore: structuralScore,
		BlendedScore:    structuralScore,
	}

	if differential && len(verdicts) > 0 {
		passed := 0
		for _, dv := range verdicts {
			if dv.Passed {
				passed++
			}
		}
		rate := float64(passed) / float64(len(verdicts)) * 100.0
		verdict.DifferentialPassRate = &rate
		verdict.BlendedScore = structuralWeight*structuralScore + differentialWeight*rate
	}

	verdict.Interchangeable = verdict.BlendedScore >= threshold
	return verdict
}
