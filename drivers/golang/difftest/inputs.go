package difftest

import (
	"fmt"
	"reflect"

	"github.com/emenda-labs/swapcheck/drivers/golang/fingerprint"
)

// maxSynthesizedArity is the parameter count above which synthesis gives
// up on representative values and supplies a single all-zero case.
const maxSynthesizedArity = 3

// InputCase is one synthesized argument battery. Candidates is a row of
// representative values; each parameter of the callee draws the first
// candidate convertible to its type, falling back to the zero value.
// Both sides of a differential case are materialized identically.
type InputCase struct {
	Name       string
	Candidates []any
}

// candidateRows is the fixed pool: one row per case, covering the empty
// shapes, a small integer shape, a small string shape and a single-entry
// mapping, each with scalar alternates for plain-typed parameters.
var candidateRows = [][]any{
	{[]int{}, []string{}, map[string]int{}, "", 0, false},
	{[]int{1, 2, 3}, 7, "7", map[string]int{"n": 7}, true},
	{[]string{"alpha", "beta"}, "alpha", 3, map[string]string{"k": "alpha"}},
	{map[string]int{"key": 1}, []int{1}, 1, "key"},
}

// Synthesize produces the input battery for a function from the
// original's signature. Zero-parameter functions get exactly one empty
// case; functions of up to three parameters get one case per pool row;
// wider functions get a single case of zero placeholders. The battery is
// finite and restartable: calling again yields the same cases.
func Synthesize(sig fingerprint.FunctionSig) []InputCase {
	arity := len(sig.ParamTypes)

	if arity == 0 {
		return []InputCase{{Name: "case-0"}}
	}

	if arity > maxSynthesizedArity {
		return []InputCase{{Name: "case-0"}}
	}

	cases := make([]InputCase, 0, len(candidateRows))
	for i, row := range candidateRows {
		cases = append(cases, InputCase{
			Name:       fmt.Sprintf("case-%d", i),
			Candidates: row,
		})
	}
	return cases
}

// materialize builds the concrete argument list for one callee from a
// candidate row. Parameters beyond the row draw zero values; variadic
// parameters receive no variadic arguments.
func materialize(fnType reflect.Type, c InputCase) []reflect.Value {
	numIn := fnType.NumIn()
	if fnType.IsVariadic() {
		numIn--
	}

	args := make([]reflect.Value, numIn)
	for i := 0; i < numIn; i++ {
		args[i] = pickValue(fnType.In(i), c.Candidates)
	}
	return args
}

// pickValue returns the first candidate assignable or convertible to the
// parameter type, or the type's zero value when none fits.
func pickValue(paramType reflect.Type, candidates []any) reflect.Value {
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		v := reflect.ValueOf(candidate)
		if v.Type().AssignableTo(paramType) {
			return v
		}
		if v.Type().ConvertibleTo(paramType) && safeConvertible(v.Type(), paramType) {
			return v.Convert(paramType)
		}
	}
	return reflect.Zero(paramType)
}

// safeConvertible excludes conversions that are legal for reflect but
// change the value's meaning, such as int to string (which yields a
// one-rune string rather than a decimal rendering).
func safeConvertible(from, to reflect.Type) bool {
	return !(isInteger(from.Kind()) && to.Kind() == reflect.String)
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
