package fingerprint

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata")
}

func TestExtract_SampleFixture(t *testing.T) {
	path := filepath.Join(testdataDir(t), "sample.go")
	fp, err := Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if fp.Package != "sample" {
		t.Errorf("package = %q, want %q", fp.Package, "sample")
	}
	if !fp.SyntaxValid {
		t.Error("syntax_valid = false, want true")
	}
	if fp.SizeBytes <= 0 {
		t.Errorf("size_bytes = %d, want > 0", fp.SizeBytes)
	}
	if fp.LineCount <= 10 {
		t.Errorf("line_count = %d, want > 10", fp.LineCount)
	}

	// Functions: the three top-level funcs, no methods among them.
	for _, name := range []string{"Describe", "Join", "Banner"} {
		if _, ok := fp.Functions[name]; !ok {
			t.Errorf("missing function %s", name)
		}
	}
	if len(fp.Functions) != 3 {
		t.Errorf("function count = %d, want 3", len(fp.Functions))
	}

	join := fp.Functions["Join"]
	if got, want := len(join.ParamTypes), 2; got != want {
		t.Fatalf("Join param count = %d, want %d", got, want)
	}
	if join.ParamTypes[0] != "[]string" || join.ParamTypes[1] != "string" {
		t.Errorf("Join params = %v, want [[]string string]", join.ParamTypes)
	}
	if len(join.ResultTypes) != 1 || join.ResultTypes[0] != "string" {
		t.Errorf("Join results = %v, want [string]", join.ResultTypes)
	}
	if join.Variadic {
		t.Error("Join variadic = true, want false")
	}

	// Types: interface with method set, struct with receiver methods.
	greeter, ok := fp.Types["Greeter"]
	if !ok {
		t.Fatal("missing type Greeter")
	}
	if greeter.Form != "interface" {
		t.Errorf("Greeter form = %q, want interface", greeter.Form)
	}
	if _, ok := greeter.Methods["Greet"]; !ok {
		t.Error("Greeter missing method Greet")
	}

	counter, ok := fp.Types["Counter"]
	if !ok {
		t.Fatal("missing type Counter")
	}
	if counter.Form != "struct" {
		t.Errorf("Counter form = %q, want struct", counter.Form)
	}
	add, ok := counter.Methods["Add"]
	if !ok {
		t.Fatal("Counter missing method Add")
	}
	if len(add.ParamTypes) != 1 || add.ParamTypes[0] != "int" {
		t.Errorf("Counter.Add params = %v, want [int]", add.ParamTypes)
	}
	if _, ok := counter.Methods["Reset"]; !ok {
		t.Error("Counter missing method Reset")
	}

	// Variables: const and vars with rendered initializers.
	maxItems, ok := fp.Variables["MaxItems"]
	if !ok {
		t.Fatal("missing binding MaxItems")
	}
	if !maxItems.Const {
		t.Error("MaxItems const = false, want true")
	}
	if maxItems.ValueText != "64" {
		t.Errorf("MaxItems value = %q, want 64", maxItems.ValueText)
	}

	name, ok := fp.Variables["DefaultName"]
	if !ok {
		t.Fatal("missing binding DefaultName")
	}
	if name.ValueText != `"sample"` {
		t.Errorf("DefaultName value = %q, want %q", name.ValueText, `"sample"`)
	}
	if _, ok := fp.Variables["ratio"]; !ok {
		t.Error("missing unexported binding ratio")
	}

	// Imports.
	if !fp.Imports.Direct["fmt"] || !fp.Imports.Direct["strings"] {
		t.Errorf("direct imports = %v, want fmt and strings", fp.Imports.Direct)
	}
}

func TestExtract_AliasedFixture(t *testing.T) {
	path := filepath.Join(testdataDir(t), "aliased.go")
	fp, err := Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !fp.Imports.Named["rnd=math/rand"] {
		t.Errorf("named imports = %v, want rnd=math/rand", fp.Imports.Named)
	}

	id, ok := fp.Types["ID"]
	if !ok {
		t.Fatal("missing type ID")
	}
	if id.Form != "alias" {
		t.Errorf("ID form = %q, want alias", id.Form)
	}
	if len(id.Embedded) != 1 || id.Embedded[0] != "string" {
		t.Errorf("ID embedded = %v, want [string]", id.Embedded)
	}

	pick, ok := fp.Functions["Pick"]
	if !ok {
		t.Fatal("missing function Pick")
	}
	if !pick.Variadic {
		t.Error("Pick variadic = false, want true")
	}

	seed, ok := fp.Variables["Seed"]
	if !ok {
		t.Fatal("missing binding Seed")
	}
	if seed.ValueText != "rnd.Int63()" {
		t.Errorf("Seed value = %q, want rnd.Int63()", seed.ValueText)
	}
}

func TestExtract_SyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.go")
	if err := os.WriteFile(path, []byte("package broken\n\nfunc {\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fp, err := Extract(context.Background(), path)
	if err == nil {
		t.Fatal("Extract on invalid syntax should fail")
	}
	if fp != nil {
		t.Error("no partial fingerprint should be produced on a parse failure")
	}
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := Extract(context.Background(), filepath.Join(t.TempDir(), "nope.go"))
	if err == nil {
		t.Fatal("Extract on a missing file should fail")
	}
}

func TestExtract_Importable(t *testing.T) {
	path := filepath.Join(testdataDir(t), "sample.go")
	fp, err := Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !fp.Importable {
		t.Error("sample fixture should load cleanly in the probe")
	}
}

func TestExtract_NotImportable(t *testing.T) {
	// Valid syntax, but the top-level initializer panics during load.
	src := "package boom\n\nvar X = mustFail()\n\nfunc mustFail() int {\n\tpanic(\"top-level failure\")\n}\n"
	path := filepath.Join(t.TempDir(), "boom.go")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	fp, err := Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if fp.Importable {
		t.Error("panicking top-level code should record importable=false")
	}
	if !fp.SyntaxValid {
		t.Error("syntax_valid should stay true for a load-only failure")
	}
}
