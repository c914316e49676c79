package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emenda-labs/swapcheck/core/compat"
)

const (
	headerRule  = "================================================================================"
	sectionRule = "----------------------------------------"
)

// Render produces the detailed human-readable report for one validation.
func Render(result *compat.ValidationResult) string {
	var b strings.Builder

	s := result.Structural

	fmt.Fprintln(&b, headerRule)
	fmt.Fprintln(&b, "MODULE INTERCHANGEABILITY REPORT")
	fmt.Fprintln(&b, headerRule)
	fmt.Fprintf(&b, "Original file:  %s\n", s.Original.Path)
	fmt.Fprintf(&b, "Candidate file: %s\n", s.Candidate.Path)
	fmt.Fprintln(&b)

	renderStats(&b, s)
	renderScore(&b, result.Verdict)
	renderKind(&b, "FUNCTIONS", s.Functions)
	renderKind(&b, "TYPES", s.Types)
	renderKind(&b, "VARIABLES", s.Variables)
	renderImports(&b, s.Imports)
	if result.Differential != nil {
		renderDifferential(&b, result.Differential, result.Verdict)
	}

	fmt.Fprintln(&b, headerRule)
	if result.Verdict.Interchangeable {
		fmt.Fprintln(&b, "VERDICT: INTERCHANGEABLE")
	} else {
		fmt.Fprintln(&b, "VERDICT: NOT INTERCHANGEABLE")
	}
	fmt.Fprintln(&b, headerRule)

	return b.String()
}

// RenderScore formats just the decisive score, for score-only mode.
func RenderScore(verdict compat.FinalVerdict) string {
	return fmt.Sprintf("%.1f", verdict.BlendedScore)
}

func renderStats(b *strings.Builder, s compat.StructuralAnalysis) {
	fmt.Fprintln(b, "BASIC STATISTICS")
	fmt.Fprintln(b, sectionRule)
	fmt.Fprintf(b, "Original  - Size: %d bytes, Lines: %d%s\n", s.Original.SizeBytes, s.Original.LineCount, moduleSuffix(s.Original))
	fmt.Fprintf(b, "Candidate - Size: %d bytes, Lines: %d%s\n", s.Candidate.SizeBytes, s.Candidate.LineCount, moduleSuffix(s.Candidate))

	if s.Original.SizeBytes > 0 {
		reduction := float64(s.Original.SizeBytes-s.Candidate.SizeBytes) / float64(s.Original.SizeBytes) * 100
		fmt.Fprintf(b, "Size reduction: %.1f%%\n", reduction)
	}

	fmt.Fprintf(b, "Original  - Syntax: %s, Importable: %s\n", yesNo(s.Original.SyntaxValid), yesNo(s.Original.Importable))
	fmt.Fprintf(b, "Candidate - Syntax: %s, Importable: %s\n", yesNo(s.Candidate.SyntaxValid), yesNo(s.Candidate.Importable))
	fmt.Fprintln(b)
}

func renderScore(b *strings.Builder, verdict compat.FinalVerdict) {
	fmt.Fprintln(b, "COMPATIBILITY SCORE")
	fmt.Fprintln(b, sectionRule)
	fmt.Fprintf(b, "Structural score: %.1f/100\n", verdict.StructuralScore)
	if verdict.DifferentialPassRate != nil {
		fmt.Fprintf(b, "Differential pass rate: %.1f%%\n", *verdict.DifferentialPassRate)
	}
	fmt.Fprintf(b, "Blended score: %.1f/100\n", verdict.BlendedScore)
	fmt.Fprintf(b, "Rating: %s\n", rating(verdict.BlendedScore))
	fmt.Fprintln(b)
}

func rating(score float64) string {
	switch {
	case score >= 95:
		return "EXCELLENT - modules are interchangeable"
	case score >= 85:
		return "GOOD - modules are largely interchangeable with minor differences"
	case score >= 70:
		return "AVERAGE - modules are partially interchangeable"
	default:
		return "LOW - modules are not interchangeable"
	}
}

func renderKind(b *strings.Builder, title string, report compat.DiffReport) {
	fmt.Fprintf(b, "%s ANALYSIS\n", title)
	fmt.Fprintln(b, sectionRule)
	fmt.Fprintf(b, "Compatible: %d  Incompatible: %d  Missing: %d  Extra: %d\n",
		len(report.Compatible), len(report.Incompatible), len(report.Missing), len(report.Extra))

	renderNameList(b, "Missing", report.Missing, "-")
	renderNameList(b, "Extra", report.Extra, "+")

	if len(report.Incompatible) > 0 {
		fmt.Fprintln(b, "Incompatible:")
		for _, name := range report.Incompatible {
			fmt.Fprintf(b, "  ! %s:\n", name)
			for _, diff := range report.Detail[name] {
				fmt.Fprintf(b, "      %s\n", diff)
			}
		}
	}
	fmt.Fprintln(b)
}

func renderImports(b *strings.Builder, report compat.DiffReport) {
	fmt.Fprintln(b, "IMPORTS ANALYSIS")
	fmt.Fprintln(b, sectionRule)
	fmt.Fprintf(b, "Shared: %d  Missing: %d  Extra: %d\n",
		len(report.Compatible), len(report.Missing), len(report.Extra))
	renderNameList(b, "Missing", report.Missing, "-")
	renderNameList(b, "Extra", report.Extra, "+")
	fmt.Fprintln(b)
}

func renderDifferential(b *strings.Builder, verdicts []compat.DifferentialVerdict, final compat.FinalVerdict) {
	fmt.Fprintln(b, "DIFFERENTIAL EXECUTION")
	fmt.Fprintln(b, sectionRule)

	if len(verdicts) == 0 {
		fmt.Fprintln(b, "No differential cases were produced; verdict is structural only.")
		fmt.Fprintln(b)
		return
	}

	passed := 0
	byFunction := make(map[string][]compat.DifferentialVerdict)
	var order []string
	for _, v := range verdicts {
		if v.Passed {
			passed++
		}
		if _, seen := byFunction[v.Function]; !seen {
			order = append(order, v.Function)
		}
		byFunction[v.Function] = append(byFunction[v.Function], v)
	}
	sort.Strings(order)

	fmt.Fprintf(b, "Cases: %d  Passed: %d  Failed: %d\n", len(verdicts), passed, len(verdicts)-passed)
	for _, fn := range order {
		fmt.Fprintf(b, "Function %s:\n", fn)
		for _, v := range byFunction[fn] {
			status := "pass"
			if !v.Passed {
				status = "FAIL"
			}
			fmt.Fprintf(b, "  [%s] %s (orig %.3fs, cand %.3fs)\n",
				status, v.TestName, v.Original.ElapsedSeconds, v.Candidate.ElapsedSeconds)
			if v.Reason != "" {
				fmt.Fprintf(b, "        %s\n", v.Reason)
			}
		}
	}
	fmt.Fprintln(b)
}

func renderNameList(b *strings.Builder, label string, names []string, marker string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, name := range names {
		fmt.Fprintf(b, "  %s %s\n", marker, name)
	}
}

func moduleSuffix(stats compat.FileStats) string {
	if stats.Module == "" {
		return ""
	}
	return fmt.Sprintf(", Module: %s", stats.Module)
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
