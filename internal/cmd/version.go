package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/output"
	"github.com/ndatools/ndav/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output.Println(version.GetInfo().String())
		},
	}
}
