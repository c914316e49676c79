package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ValidateOptions holds the parsed flags and arguments for "validate".
type ValidateOptions struct {
	Original       string
	Candidate      string
	Differential   bool
	ScoreOnly      bool
	Output         string
	Verbose        bool
	MaxFunctions   int
	TimeoutSeconds int
	ConfigPath     string
}

// ValidateRunFunc is the function signature for the validate command
// handler. It is injected by the wiring layer (cmd/swapcheck/main.go).
type ValidateRunFunc func(ctx context.Context, opts ValidateOptions) error

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd(runFunc ValidateRunFunc) *cobra.Command {
	var opts ValidateOptions

	cmd := &cobra.Command{
		Use:   "validate <original> <candidate>",
		Short: "Validate that the candidate file is a drop-in replacement for the original",
		Long:  "Validate compares two Go source files structurally and, with --differential, by executing shared functions in a sandbox. Exit code 0 means interchangeable.",
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Original = args[0]
			opts.Candidate = args[1]
			return validateValidateArgs(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Differential, "differential", "d", false, "Execute shared functions in both files and compare results")
	cmd.Flags().BoolVarP(&opts.ScoreOnly, "score-only", "s", false, "Print only the compatibility score")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the report to a file as well as stdout")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().IntVar(&opts.MaxFunctions, "max-functions", 0, "Cap on differentially executed functions (default from config)")
	cmd.Flags().IntVar(&opts.TimeoutSeconds, "timeout", 0, "Per-call timeout in seconds (default from config)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to a YAML config file")

	return cmd
}

// validateValidateArgs checks both input files before any analysis runs.
// A missing file is reported by name and the process exits nonzero
// without reaching the core.
func validateValidateArgs(opts ValidateOptions) error {
	for _, check := range []struct{ label, path string }{
		{"original", opts.Original},
		{"candidate", opts.Candidate},
	} {
		info, err := os.Stat(check.path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%s file does not exist: %s", check.label, check.path)
			}
			return fmt.Errorf("cannot access %s file: %w", check.label, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s path is a directory, not a file: %s", check.label, check.path)
		}
	}

	if opts.MaxFunctions < 0 {
		return fmt.Errorf("--max-functions must not be negative")
	}
	if opts.TimeoutSeconds < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}

	return nil
}
