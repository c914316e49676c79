package difftest

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/zap"

	"github.com/emenda-labs/swapcheck/core/compat"
	"github.com/emenda-labs/swapcheck/drivers/golang/fingerprint"
	"github.com/emenda-labs/swapcheck/drivers/golang/sandbox"
)

// DefaultMaxFunctions caps how many shared functions are exercised so
// total execution time stays bounded.
const DefaultMaxFunctions = 10

// Runner orchestrates differential execution: for each function present
// in both fingerprints it loads both files into fresh sandboxes,
// synthesizes one input battery from the original's signature and
// executes every case against both sides.
type Runner struct {
	Loader       *sandbox.Loader
	Executor     *Executor
	MaxFunctions int

	log *zap.Logger
}

// NewRunner builds a Runner with default caps.
func NewRunner(loader *sandbox.Loader, exec *Executor, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		Loader:       loader,
		Executor:     exec,
		MaxFunctions: DefaultMaxFunctions,
		log:          log,
	}
}

// Run executes the differential battery and returns one verdict per
// case. Run never fails: a function that cannot be loaded or resolved on
// either side contributes zero verdicts and is excluded from the
// aggregate.
func (r *Runner) Run(ctx context.Context, original, candidate *fingerprint.SourceFingerprint) []compat.DifferentialVerdict {
	shared := sharedFunctions(original, candidate)

	limit := r.MaxFunctions
	if limit <= 0 {
		limit = DefaultMaxFunctions
	}
	if len(shared) > limit {
		shared = shared[:limit]
	}

	var verdicts []compat.DifferentialVerdict
	for _, name := range shared {
		verdicts = append(verdicts, r.runFunction(ctx, name, original, candidate)...)
	}
	return verdicts
}

// runFunction executes the full battery for one shared function. Both
// modules are loaded fresh so earlier functions cannot leak state into
// later ones.
func (r *Runner) runFunction(ctx context.Context, name string, original, candidate *fingerprint.SourceFingerprint) []compat.DifferentialVerdict {
	origFn, ok := r.resolve(ctx, original.Path, name)
	if !ok {
		r.log.Debug("function unresolvable in original sandbox, skipping",
			zap.String("function", name), zap.String("path", original.Path))
		return nil
	}

	candFn, ok := r.resolve(ctx, candidate.Path, name)
	if !ok {
		r.log.Debug("function unresolvable in candidate sandbox, skipping",
			zap.String("function", name), zap.String("path", candidate.Path))
		return nil
	}

	cases := Synthesize(original.Functions[name])

	verdicts := make([]compat.DifferentialVerdict, 0, len(cases))
	for _, input := range cases {
		origOut := r.Executor.Call(origFn, input)
		candOut := r.Executor.Call(candFn, input)

		passed, reason := judge(origOut, candOut)
		verdicts = append(verdicts, compat.DifferentialVerdict{
			TestName:  fmt.Sprintf("%s/%s", name, input.Name),
			Function:  name,
			Original:  origOut,
			Candidate: candOut,
			Passed:    passed,
			Reason:    reason,
		})
	}
	return verdicts
}

// resolve loads the file into a fresh sandbox and looks up the callable.
func (r *Runner) resolve(ctx context.Context, path, name string) (reflect.Value, bool) {
	module, err := r.Loader.Load(ctx, path)
	if err != nil {
		r.log.Debug("sandbox load failed", zap.String("path", path), zap.Error(err))
		return reflect.Value{}, false
	}
	fn, ok := module.Lookup(name)
	if !ok || fn.Kind() != reflect.Func {
		return reflect.Value{}, false
	}
	return fn, true
}

// judge decides one case. Two errored outcomes pass iff their error
// kinds are equal; two clean outcomes pass iff the results are
// structurally equal; a mixed pair always fails.
func judge(orig, cand compat.ExecutionOutcome) (bool, string) {
	switch {
	case orig.Errored() && cand.Errored():
		if orig.ErrorKind == cand.ErrorKind {
			return true, ""
		}
		return false, fmt.Sprintf("error kinds differ: %s vs %s", orig.ErrorKind, cand.ErrorKind)

	case orig.Errored():
		return false, fmt.Sprintf("original errored (%s), candidate succeeded", orig.ErrorKind)

	case cand.Errored():
		return false, fmt.Sprintf("candidate errored (%s), original succeeded", cand.ErrorKind)

	default:
		if Equal(orig.Value, cand.Value) {
			return true, ""
		}
		return false, fmt.Sprintf("results differ: %v vs %v", orig.Value, cand.Value)
	}
}

// sharedFunctions returns the sorted names present in both fingerprints.
func sharedFunctions(original, candidate *fingerprint.SourceFingerprint) []string {
	var names []string
	for name := range original.Functions {
		if _, ok := candidate.Functions[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
