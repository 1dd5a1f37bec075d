package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/output"
	"github.com/ndatools/ndav/internal/templates"
)

// NewTemplateCmd creates the template command.
func NewTemplateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "template <type>",
		Short: "Generate a metadata template",
		Long: `Generate an empty NDA metadata template CSV.

Available types: ` + strings.Join(templates.Types(), ", ") + `

Examples:
  # Write eeg_template.csv in the current directory
  ndav template eeg

  # Write the template to a specific path
  ndav template mri --output C4223/mri/metadata.csv`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: templates.Types(),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataType := args[0]

			path := outputPath
			if path == "" {
				path = dataType + "_template.csv"
			}

			if err := templates.Write(dataType, path); err != nil {
				return err
			}

			output.Println(output.FormatCheckmark("Created " + path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default <type>_template.csv)")

	return cmd
}
