package sandbox

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/traefik/yaegi/interp"
)

// DefaultLoadTimeout bounds top-level execution during a sandbox load.
const DefaultLoadTimeout = 5 * time.Second

// sourceCacheSize is the capacity of the source-byte cache. Loads stay
// fresh per call; only the disk read is cached.
const sourceCacheSize = 32

// Module is one loaded sandbox namespace. Every Load call produces a
// fresh, independently owned interpreter; modules are never shared.
type Module struct {
	Path    string
	Package string

	interp *interp.Interpreter
}

// Lookup resolves a top-level name bound during execution. The package
// clause is spliced to main at load time, so bare names resolve whether
// or not they are exported.
func (m *Module) Lookup(name string) (reflect.Value, bool) {
	v, err := m.interp.Eval(name)
	if err != nil || !v.IsValid() {
		return reflect.Value{}, false
	}
	return v, true
}

// Loader executes Go source files inside restricted interpreter
// namespaces exposing only the allow-listed standard library surface.
// This is a coarse sandbox: it prevents unintended library use but does
// not bound computation.
type Loader struct {
	LoadTimeout time.Duration

	cache *lru.Cache[string, []byte]
}

// NewLoader builds a Loader with the default load timeout.
func NewLoader() (*Loader, error) {
	cache, err := lru.New[string, []byte](sourceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("building source cache: %w", err)
	}
	return &Loader{LoadTimeout: DefaultLoadTimeout, cache: cache}, nil
}

// Load executes the file's source against a fresh restricted namespace
// and returns the resulting module. Any failure during read, splice or
// evaluation fails the load; the error is for logging, never fatal to
// the caller's run.
func (l *Loader) Load(ctx context.Context, path string) (*Module, error) {
	src, err := l.source(path)
	if err != nil {
		return nil, err
	}

	spliced, pkgName, err := rewritePackageClause(path, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{Stdout: io.Discard, Stderr: io.Discard})
	if err := i.Use(restrictedSymbols()); err != nil {
		return nil, fmt.Errorf("installing sandbox symbols: %w", err)
	}

	timeout := l.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := i.EvalWithContext(loadCtx, string(spliced)); err != nil {
		return nil, fmt.Errorf("executing %s in sandbox: %w", path, err)
	}

	return &Module{Path: path, Package: pkgName, interp: i}, nil
}

// source returns the file's bytes, serving repeated loads from the cache.
func (l *Loader) source(path string) ([]byte, error) {
	if src, ok := l.cache.Get(path); ok {
		return src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	l.cache.Add(path, src)
	return src, nil
}

// rewritePackageClause splices the declared package name to "main" so
// evaluated declarations land in the interpreter's default package.
func rewritePackageClause(path string, src []byte) ([]byte, string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.PackageClauseOnly)
	if err != nil {
		return nil, "", fmt.Errorf("locating package clause in %s: %w", path, err)
	}

	name := file.Name.Name
	start := fset.Position(file.Name.Pos()).Offset
	end := fset.Position(file.Name.End()).Offset
	if start < 0 || end > len(src) || start > end {
		return src, name, nil
	}

	out := make([]byte, 0, len(src)+4)
	out = append(out, src[:start]...)
	out = append(out, []byte("main")...)
	out = append(out, src[end:]...)
	return out, name, nil
}
