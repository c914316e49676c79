package gomod

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindEnclosingModule_SameDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/widget\n\ngo 1.22\n")
	writeFile(t, filepath.Join(dir, "widget.go"), "package widget\n")

	path, err := FindEnclosingModule(filepath.Join(dir, "widget.go"))
	require.NoError(t, err)
	require.Equal(t, "example.com/widget", path)
}

func TestFindEnclosingModule_WalksUpToTheRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/widget\n")
	nested := filepath.Join(dir, "internal", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, filepath.Join(nested, "deep.go"), "package deep\n")

	path, err := FindEnclosingModule(filepath.Join(nested, "deep.go"))
	require.NoError(t, err)
	require.Equal(t, "example.com/widget", path)
}

func TestFindEnclosingModule_NoModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "loose.go"), "package loose\n")

	path, err := FindEnclosingModule(filepath.Join(dir, "loose.go"))
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestFindEnclosingModule_MalformedGoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module \"unterminated\n")
	writeFile(t, filepath.Join(dir, "widget.go"), "package widget\n")

	_, err := FindEnclosingModule(filepath.Join(dir, "widget.go"))
	require.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
