package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/config"
	"github.com/ndatools/ndav/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the ndav configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file parses as YAML
  3. Config satisfies the schema (types, enums, value ranges)
  4. Collection settings are consistent (identity fields, extension coverage)

The config path is resolved using precedence:
  --config flag > NDAV_CONFIG env > ~/.ndav/config.yaml

Examples:
  # Validate default configuration
  ndav config vet

  # Validate custom config path
  ndav config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	output.Debug("validating config", "path", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewExitError(
			fmt.Errorf("configuration file not found: %s (run 'ndav config init' to create one)", path),
			ExitNotFound,
		)
	}
	output.Println(output.FormatVetCheck("config file exists", path))

	cfg, err := config.NewLoader().LoadWithDefaults(path)
	if err != nil {
		return WrapValidation(err, "config file does not parse")
	}
	output.Println(output.FormatVetCheck("config file parses", ""))

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := validator.Validate(cfg); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				output.Error(ve.Error())
			}
			return NewExitError(
				fmt.Errorf("configuration invalid: %d problem(s) found", len(verrs)),
				ExitValidationError,
			)
		}
		return WrapValidation(err, "configuration invalid")
	}
	output.Println(output.FormatVetCheck("schema constraints satisfied", ""))
	output.Println(output.FormatVetCheck("collection settings consistent",
		fmt.Sprintf("%d collection(s)", len(cfg.Collections))))

	output.Println(output.FormatCheckmark("Configuration is valid"))
	return nil
}
