package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))
	return path
}

func TestValidateValidateArgs(t *testing.T) {
	dir := t.TempDir()
	orig := writeSource(t, dir, "orig.go")
	cand := writeSource(t, dir, "cand.go")

	tests := []struct {
		name    string
		opts    ValidateOptions
		wantErr string
	}{
		{
			name: "both files present",
			opts: ValidateOptions{Original: orig, Candidate: cand},
		},
		{
			name:    "missing original",
			opts:    ValidateOptions{Original: filepath.Join(dir, "gone.go"), Candidate: cand},
			wantErr: "original file does not exist",
		},
		{
			name:    "missing candidate",
			opts:    ValidateOptions{Original: orig, Candidate: filepath.Join(dir, "gone.go")},
			wantErr: "candidate file does not exist",
		},
		{
			name:    "directory as candidate",
			opts:    ValidateOptions{Original: orig, Candidate: dir},
			wantErr: "candidate path is a directory",
		},
		{
			name:    "negative max-functions",
			opts:    ValidateOptions{Original: orig, Candidate: cand, MaxFunctions: -1},
			wantErr: "--max-functions",
		},
		{
			name:    "negative timeout",
			opts:    ValidateOptions{Original: orig, Candidate: cand, TimeoutSeconds: -1},
			wantErr: "--timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateValidateArgs(tt.opts)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidateCmd_ParsesFlagsAndArgs(t *testing.T) {
	dir := t.TempDir()
	orig := writeSource(t, dir, "orig.go")
	cand := writeSource(t, dir, "cand.go")

	var got ValidateOptions
	cmd := NewValidateCmd(func(ctx context.Context, opts ValidateOptions) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{orig, cand, "-d", "-s", "--max-functions", "3", "--timeout", "2"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, orig, got.Original)
	require.Equal(t, cand, got.Candidate)
	require.True(t, got.Differential)
	require.True(t, got.ScoreOnly)
	require.Equal(t, 3, got.MaxFunctions)
	require.Equal(t, 2, got.TimeoutSeconds)
}

func TestNewValidateCmd_RejectsWrongArity(t *testing.T) {
	cmd := NewValidateCmd(func(ctx context.Context, opts ValidateOptions) error {
		t.Fatal("run func must not be called")
		return nil
	})
	cmd.SetArgs([]string{"only-one.go"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	require.Error(t, cmd.ExecuteContext(context.Background()))
}
