package fingerprint

// ComplexExpr is the sentinel recorded when an initializer expression has
// no renderable source form.
const ComplexExpr = "<complex expression>"

// FunctionSig describes one top-level function declaration. Equivalence
// between two signatures requires identical ordered parameter types, the
// same variadic marker, and identical ordered result types. Parameter
// names are recorded for reporting but are descriptive only.
type FunctionSig struct {
	Name        string   `json:"name"`
	Line        int      `json:"line"`
	ParamNames  []string `json:"param_names,omitempty"`
	ParamTypes  []string `json:"param_types,omitempty"`
	Variadic    bool     `json:"variadic,omitempty"`
	ResultTypes []string `json:"result_types,omitempty"`
}

// MethodSig describes one method of a named type: a receiver method for
// struct and defined types, or a method-set entry for interfaces.
type MethodSig struct {
	Name        string   `json:"name"`
	ParamTypes  []string `json:"param_types,omitempty"`
	ResultTypes []string `json:"result_types,omitempty"`
}

// TypeSig describes one named type declaration. Embedded holds the
// embedded struct fields or embedded interfaces in declaration order;
// they play the role of a base-type list and are compared order-sensitively.
type TypeSig struct {
	Name     string               `json:"name"`
	Line     int                  `json:"line"`
	Form     string               `json:"form"` // "struct", "interface", "alias" or "defined"
	Embedded []string             `json:"embedded,omitempty"`
	Methods  map[string]MethodSig `json:"methods,omitempty"`
}

// VarBinding describes one file-level var or const spec with a simple
// name target. Equivalence is textual equality of ValueText.
type VarBinding struct {
	Name     string `json:"name"`
	Line     int    `json:"line"`
	Const    bool   `json:"const,omitempty"`
	TypeText string `json:"type_text,omitempty"` // declared type, empty when inferred
	ValueText string `json:"value_text,omitempty"`
	Tag      string `json:"tag,omitempty"` // coarse initializer category, descriptive only
}

// ImportSet splits the file's imports into plain path imports and
// aliased forms. Named entries are keyed "alias=path" so that renaming
// an alias shows up as a difference.
type ImportSet struct {
	Direct map[string]bool `json:"direct,omitempty"`
	Named  map[string]bool `json:"named,omitempty"`
}

// SourceFingerprint is the normalized structural summary of one Go source
// file. It is immutable after Extract returns it; each name is unique
// within its map, with the last textual declaration winning.
type SourceFingerprint struct {
	Path        string                 `json:"path"`
	Package     string                 `json:"package"`
	Module      string                 `json:"module,omitempty"`
	Functions   map[string]FunctionSig `json:"functions,omitempty"`
	Types       map[string]TypeSig     `json:"types,omitempty"`
	Variables   map[string]VarBinding  `json:"variables,omitempty"`
	Imports     ImportSet              `json:"imports"`
	SyntaxValid bool                   `json:"syntax_valid"`
	Importable  bool                   `json:"importable"`
	SizeBytes   int64                  `json:"size_bytes"`
	LineCount   int                    `json:"line_count"`
}

// DeclaredCount returns the number of scoreable declarations: functions,
// types and variables. Imports are excluded from scoring.
func (f *SourceFingerprint) DeclaredCount() int {
	return len(f.Functions) + len(f.Types) + len(f.Variables)
}
