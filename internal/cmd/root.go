package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/config"
	"github.com/ndatools/ndav/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	ndavConfig *config.Config

	// logCloser closes the log file sink, if one was opened.
	logCloser func() error
)

// NewRootCmd creates the root command for the ndav CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ndav",
		Short:         "NDA research data validation tool",
		Long:          `ndav validates neuroscience research data collections against NDA submission requirements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser()
			}
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: NDAV_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewSplitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// resolveConfigPath applies the config path precedence:
// --config flag > NDAV_CONFIG env > ~/.ndav/config.yaml.
func resolveConfigPath() (string, error) {
	if configFlag != "" {
		return config.ExpandPath(configFlag)
	}
	return config.GetConfigFile()
}

// initializeGlobals loads configuration and sets up logging.
// A missing config file is not an error here; commands that depend on
// configured collections report it themselves.
func initializeGlobals() error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().LoadWithDefaults(path)
	if err != nil {
		return err
	}
	ndavConfig = cfg

	logCloser, err = output.SetupLogging(output.LogConfig{
		Level:   cfg.Logging.Level,
		Verbose: verboseFlag,
		File:    cfg.Logging.File,
	})
	if err != nil {
		return err
	}

	output.Debug("configuration loaded", "path", path, "collections", len(cfg.Collections))
	return nil
}
