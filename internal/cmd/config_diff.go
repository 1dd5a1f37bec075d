package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/config"
	"github.com/ndatools/ndav/internal/output"
)

// NewConfigDiffCmd creates the config diff command.
func NewConfigDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Compare two configuration files",
		Long: `Compare two configuration files semantically.

Files that differ only in formatting (key order, quoting, flow vs block
style) are reported as equivalent. Semantic differences are listed and
the command exits with code 1.

Examples:
  # Compare the active config against a candidate
  ndav config diff ~/.ndav/config.yaml new-config.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigDiff,
	}
}

func runConfigDiff(cmd *cobra.Command, args []string) error {
	result, err := config.CompareFiles(args[0], args[1])
	if err != nil {
		return err
	}

	if result.Equivalent {
		output.Println(output.FormatCheckmark("Configurations are equivalent"))
		return nil
	}

	output.Print(result.Report)
	return NewExitError(
		fmt.Errorf("configurations differ: %d change(s)", result.Changes),
		ExitGeneralError,
	)
}
