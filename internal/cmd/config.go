package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config parent command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ndav configuration",
		Long:  `Manage the ndav configuration file (~/.ndav/config.yaml).`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())
	cmd.AddCommand(NewConfigDiffCmd())

	return cmd
}
