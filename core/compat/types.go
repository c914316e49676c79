package compat

// EntityKind identifies which declaration category a diff report covers.
type EntityKind string

const (
	EntityFunction EntityKind = "function"
	EntityType     EntityKind = "type"
	EntityVariable EntityKind = "variable"
	EntityImport   EntityKind = "import"
)

// DiffReport classifies the names of one entity kind across the two files.
// Detail maps a name to the human-readable differences found for it.
type DiffReport struct {
	Kind         EntityKind          `json:"kind"`
	Compatible   []string            `json:"compatible,omitempty"`
	Incompatible []string            `json:"incompatible,omitempty"`
	Missing      []string            `json:"missing,omitempty"`
	Extra        []string            `json:"extra,omitempty"`
	Detail       map[string][]string `json:"detail,omitempty"`
}

// FileStats carries the per-file statistics shown in the report header.
type FileStats struct {
	Path        string `json:"path"`
	Module      string `json:"module,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
	LineCount   int    `json:"line_count"`
	SyntaxValid bool   `json:"syntax_valid"`
	Importable  bool   `json:"importable"`
}

// StructuralAnalysis is the full static comparison of the two files.
type StructuralAnalysis struct {
	Original  FileStats  `json:"original"`
	Candidate FileStats  `json:"candidate"`
	Functions DiffReport `json:"functions"`
	Types     DiffReport `json:"types"`
	Variables DiffReport `json:"variables"`
	Imports   DiffReport `json:"imports"`
	Score     float64    `json:"score"`
}

// ErrorKind is the closed set of failure categories a sandboxed call can
// produce. Two errored outcomes are equivalent iff their kinds are equal;
// error message text is carried for reporting only, never compared.
type ErrorKind string

const (
	ErrorTimeout      ErrorKind = "timeout"
	ErrorPanic        ErrorKind = "panic"
	ErrorReturned     ErrorKind = "error"
	ErrorUncallable   ErrorKind = "uncallable"
	ErrorUnresolvable ErrorKind = "unresolvable"
)

// ExecutionOutcome records one sandboxed call: its value on success, or
// the error kind and message on failure. Elapsed time is set either way.
type ExecutionOutcome struct {
	Value          any       `json:"value,omitempty"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	ErrorKind      ErrorKind `json:"error_kind,omitempty"`
	ErrorMessage   string    `json:"error_message,omitempty"`
}

// Errored reports whether the call failed.
func (o ExecutionOutcome) Errored() bool {
	return o.ErrorKind != ""
}

// DifferentialVerdict is the pass/fail result of one synthesized input
// case executed against both files.
type DifferentialVerdict struct {
	TestName  string           `json:"test_name"`
	Function  string           `json:"function"`
	Original  ExecutionOutcome `json:"original"`
	Candidate ExecutionOutcome `json:"candidate"`
	Passed    bool             `json:"passed"`
	Reason    string           `json:"reason,omitempty"`
}

// FinalVerdict blends the structural score with the differential pass
// rate. DifferentialPassRate is nil when differential mode was off or
// produced zero cases; the blend then falls back to the structural score.
type FinalVerdict struct {
	StructuralScore      float64  `json:"structural_score"`
	DifferentialPassRate *float64 `json:"differential_pass_rate,omitempty"`
	BlendedScore         float64  `json:"blended_score"`
	Interchangeable      bool     `json:"interchangeable"`
}

// ValidationResult is everything the reporting layer consumes.
type ValidationResult struct {
	Structural   StructuralAnalysis    `json:"structural"`
	Differential []DifferentialVerdict `json:"differential,omitempty"`
	Verdict      FinalVerdict          `json:"verdict"`
}
