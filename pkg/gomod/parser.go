package gomod

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// FindEnclosingModule walks up from the file's directory looking for a
// go.mod and returns its module path. A file outside any module returns
// an empty path and no error; only a malformed go.mod is an error.
func FindEnclosingModule(filePath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", filePath, err)
	}

	dir := filepath.Dir(abs)
	for {
		gomodPath := filepath.Join(dir, "go.mod")
		data, readErr := os.ReadFile(gomodPath)
		if readErr == nil {
			f, parseErr := modfile.Parse(gomodPath, data, nil)
			if parseErr != nil {
				return "", fmt.Errorf("parsing %s: %w", gomodPath, parseErr)
			}
			if f.Module == nil {
				return "", nil
			}
			return f.Module.Mod.Path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
