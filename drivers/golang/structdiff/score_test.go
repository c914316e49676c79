package structdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emenda-labs/swapcheck/drivers/golang/fingerprint"
)

func scoreAgainstSelf(fp *fingerprint.SourceFingerprint) float64 {
	functions := CompareFunctions(fp.Functions, fp.Functions)
	types := CompareTypes(fp.Types, fp.Types)
	variables := CompareVariables(fp.Variables, fp.Variables)
	return Score(fp, functions, types, variables)
}

func TestScore_SelfComparisonIsAlwaysFull(t *testing.T) {
	fp := &fingerprint.SourceFingerprint{
		Functions: map[string]fingerprint.FunctionSig{
			"Add": {Name: "Add", ParamTypes: []string{"int", "int"}},
		},
		Types: map[string]fingerprint.TypeSig{
			"Counter": {Name: "Counter", Form: "struct"},
		},
		Variables: map[string]fingerprint.VarBinding{
			"MaxItems": {Name: "MaxItems", ValueText: "64"},
		},
	}

	assert.Equal(t, 100.0, scoreAgainstSelf(fp))
}

func TestScore_EmptyOriginalScoresFull(t *testing.T) {
	empty := &fingerprint.SourceFingerprint{
		Functions: map[string]fingerprint.FunctionSig{},
		Types:     map[string]fingerprint.TypeSig{},
		Variables: map[string]fingerprint.VarBinding{},
	}
	candidate := &fingerprint.SourceFingerprint{
		Functions: map[string]fingerprint.FunctionSig{
			"Anything": {Name: "Anything"},
		},
	}

	functions := CompareFunctions(empty.Functions, candidate.Functions)
	types := CompareTypes(empty.Types, candidate.Types)
	variables := CompareVariables(empty.Variables, candidate.Variables)

	assert.Equal(t, 100.0, Score(empty, functions, types, variables))
}

func TestScore_RenamedOnlyFunctionDropsToZero(t *testing.T) {
	original := &fingerprint.SourceFingerprint{
		Functions: map[string]fingerprint.FunctionSig{
			"Add": {Name: "Add", ParamTypes: []string{"int", "int"}},
		},
		Types:     map[string]fingerprint.TypeSig{},
		Variables: map[string]fingerprint.VarBinding{},
	}
	candidate := map[string]fingerprint.FunctionSig{
		"Sum2": {Name: "Sum2", ParamTypes: []string{"int", "int"}},
	}

	functions := CompareFunctions(original.Functions, candidate)
	types := CompareTypes(nil, nil)
	variables := CompareVariables(nil, nil)

	assert.Equal(t, 0.0, Score(original, functions, types, variables))
}

func TestScore_IncompatibleExcludedFromCount(t *testing.T) {
	original := &fingerprint.SourceFingerprint{
		Functions: map[string]fingerprint.FunctionSig{
			"Add":  {Name: "Add", ParamTypes: []string{"int", "int"}},
			"Size": {Name: "Size", ResultTypes: []string{"int"}},
		},
		Types:     map[string]fingerprint.TypeSig{},
		Variables: map[string]fingerprint.VarBinding{},
	}
	candidate := map[string]fingerprint.FunctionSig{
		"Add":  {Name: "Add", ParamTypes: []string{"int", "int", "int"}},
		"Size": {Name: "Size", ResultTypes: []string{"int"}},
	}

	functions := CompareFunctions(original.Functions, candidate)
	types := CompareTypes(nil, nil)
	variables := CompareVariables(nil, nil)

	assert.Equal(t, 50.0, Score(original, functions, types, variables))
}
