package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level swapcheck command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swapcheck",
		Short: "Module interchangeability validator",
		Long:  "Swapcheck decides whether two Go source files are behaviorally interchangeable as drop-in replacements, combining structural comparison with differential execution.",
	}

	cmd.Version = version

	return cmd
}
