package fingerprint

import (
	"context"
	"go/ast"
	"go/token"
	"io"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// probeTimeout bounds the best-effort load so pathological top-level code
// cannot hang extraction.
const probeTimeout = 5 * time.Second

// probeImportable evaluates the file in an unrestricted interpreter to
// record whether it loads cleanly as a module. Every failure, including
// a timeout, is swallowed and reported as false. This may execute
// arbitrary top-level code in the file; it is a documented risk of the
// probe, not a sandbox.
func probeImportable(ctx context.Context, src []byte, file *ast.File, fset *token.FileSet) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	i := interp.New(interp.Options{Stdout: io.Discard, Stderr: io.Discard})
	if err := i.Use(stdlib.Symbols); err != nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := i.EvalWithContext(probeCtx, string(spliceMainPackage(src, file, fset)))
	return err == nil
}

// spliceMainPackage rewrites the package clause to "main" so the source
// evaluates inside the interpreter's default package regardless of its
// declared package name.
func spliceMainPackage(src []byte, file *ast.File, fset *token.FileSet) []byte {
	if file == nil || file.Name == nil {
		return src
	}
	start := fset.Position(file.Name.Pos()).Offset
	end := fset.Position(file.Name.End()).Offset
	if start < 0 || end > len(src) || start > end {
		return src
	}
	out := make([]byte, 0, len(src)+4)
	out = append(out, src[:start]...)
	out = append(out, []byte("main")...)
	out = append(out, src[end:]...)
	return out
}
