package structdiff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emenda-labs/swapcheck/core/compat"
	"github.com/emenda-labs/swapcheck/drivers/golang/fingerprint"
)

// CompareFunctions diffs the two function tables. Names only in the
// original are missing, names only in the candidate are extra; shared
// names are compatible unless parameter types, variadic marker or result
// types differ, with each difference recorded as a report string.
func CompareFunctions(original, candidate map[string]fingerprint.FunctionSig) compat.DiffReport {
	report := newReport(compat.EntityFunction)

	for name := range original {
		if _, ok := candidate[name]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	for name := range candidate {
		if _, ok := original[name]; !ok {
			report.Extra = append(report.Extra, name)
		}
	}

	for name, orig := range original {
		cand, ok := candidate[name]
		if !ok {
			continue
		}

		var diffs []string
		if !equalStrings(orig.ParamTypes, cand.ParamTypes) {
			diffs = append(diffs, fmt.Sprintf("Params: %s -> %s", typeList(orig.ParamTypes), typeList(cand.ParamTypes)))
		}
		if orig.Variadic != cand.Variadic {
			diffs = append(diffs, fmt.Sprintf("Variadic: %t -> %t", orig.Variadic, cand.Variadic))
		}
		if !equalStrings(orig.ResultTypes, cand.ResultTypes) {
			diffs = append(diffs, fmt.Sprintf("Results: %s -> %s", typeList(orig.ResultTypes), typeList(cand.ResultTypes)))
		}

		classify(&report, name, diffs)
	}

	finish(&report)
	return report
}

// CompareTypes diffs the two type tables. Embedded type lists are
// order-sensitive; shared methods must agree on parameter types.
// Missing or extra methods are reported in the detail strings but do not
// alone make the type incompatible.
func CompareTypes(original, candidate map[string]fingerprint.TypeSig) compat.DiffReport {
	report := newReport(compat.EntityType)

	for name := range original {
		if _, ok := candidate[name]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	for name := range candidate {
		if _, ok := original[name]; !ok {
			report.Extra = append(report.Extra, name)
		}
	}

	for name, orig := range original {
		cand, ok := candidate[name]
		if !ok {
			continue
		}

		var diffs []string
		var notes []string

		if !equalStrings(orig.Embedded, cand.Embedded) {
			diffs = append(diffs, fmt.Sprintf("Embedded: %s -> %s", typeList(orig.Embedded), typeList(cand.Embedded)))
		}

		var missingMethods, extraMethods []string
		for mName := range orig.Methods {
			if _, ok := cand.Methods[mName]; !ok {
				missingMethods = append(missingMethods, mName)
			}
		}
		for mName := range cand.Methods {
			if _, ok := orig.Methods[mName]; !ok {
				extraMethods = append(extraMethods, mName)
			}
		}
		sort.Strings(missingMethods)
		sort.Strings(extraMethods)
		if len(missingMethods) > 0 {
			notes = append(notes, fmt.Sprintf("Missing methods: %s", typeList(missingMethods)))
		}
		if len(extraMethods) > 0 {
			notes = append(notes, fmt.Sprintf("Extra methods: %s", typeList(extraMethods)))
		}

		sharedMethods := make([]string, 0, len(orig.Methods))
		for mName := range orig.Methods {
			if _, ok := cand.Methods[mName]; ok {
				sharedMethods = append(sharedMethods, mName)
			}
		}
		sort.Strings(sharedMethods)
		for _, mName := range sharedMethods {
			om := orig.Methods[mName]
			cm := cand.Methods[mName]
			if !equalStrings(om.ParamTypes, cm.ParamTypes) {
				diffs = append(diffs, fmt.Sprintf("Method %s: %s -> %s", mName, typeList(om.ParamTypes), typeList(cm.ParamTypes)))
			}
		}

		if len(diffs) > 0 {
			report.Incompatible = append(report.Incompatible, name)
			report.Detail[name] = append(diffs, notes...)
			continue
		}
		report.Compatible = append(report.Compatible, name)
		if len(notes) > 0 {
			report.Detail[name] = notes
		}
	}

	finish(&report)
	return report
}

// CompareVariables diffs the two binding tables. Equivalence is textual
// equality of the reconstructed initializer expressions.
func CompareVariables(original, candidate map[string]fingerprint.VarBinding) compat.DiffReport {
	report := newReport(compat.EntityVariable)

	for name := range original {
		if _, ok := candidate[name]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	for name := range candidate {
		if _, ok := original[name]; !ok {
			report.Extra = append(report.Extra, name)
		}
	}

	for name, orig := range original {
		cand, ok := candidate[name]
		if !ok {
			continue
		}

		var diffs []string
		if orig.ValueText != cand.ValueText {
			diffs = append(diffs, fmt.Sprintf("Value: %s -> %s", orDash(orig.ValueText), orDash(cand.ValueText)))
		}

		classify(&report, name, diffs)
	}

	finish(&report)
	return report
}

// CompareImports diffs the import sets. Imports are either shared,
// missing or extra; there is no incompatible notion for them.
func CompareImports(original, candidate fingerprint.ImportSet) compat.DiffReport {
	report := newReport(compat.EntityImport)

	origAll := flattenImports(original)
	candAll := flattenImports(candidate)

	for name := range origAll {
		if candAll[name] {
			report.Compatible = append(report.Compatible, name)
		} else {
			report.Missing = append(report.Missing, name)
		}
	}
	for name := range candAll {
		if !origAll[name] {
			report.Extra = append(report.Extra, name)
		}
	}

	finish(&report)
	return report
}

func flattenImports(set fingerprint.ImportSet) map[string]bool {
	all := make(map[string]bool, len(set.Direct)+len(set.Named))
	for path := range set.Direct {
		all[path] = true
	}
	for entry := range set.Named {
		all[entry] = true
	}
	return all
}

func newReport(kind compat.EntityKind) compat.DiffReport {
	return compat.DiffReport{Kind: kind, Detail: make(map[string][]string)}
}

// classify files a shared name as compatible or incompatible based on
// the collected difference strings.
func classify(report *compat.DiffReport, name string, diffs []string) {
	if len(diffs) == 0 {
		report.Compatible = append(report.Compatible, name)
		return
	}
	report.Incompatible = append(report.Incompatible, name)
	report.Detail[name] = diffs
}

// finish sorts every name list so reports are deterministic.
func finish(report *compat.DiffReport) {
	sort.Strings(report.Compatible)
	sort.Strings(report.Incompatible)
	sort.Strings(report.Missing)
	sort.Strings(report.Extra)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func typeList(types []string) string {
	return "[" + strings.Join(types, ", ") + "]"
}

func orDash(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}
