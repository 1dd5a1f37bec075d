package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

// Environment variable prefix for ndav configuration.
const envPrefix = "NDAV"

// Loader handles loading and merging configuration from multiple sources.
//
// The file layer is parsed with sigs.k8s.io/yaml rather than viper's own
// reader: collection codes are case-sensitive map keys (C3996), and viper
// lowercases keys. Viper supplies the environment layer on top.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("logging.level", "NDAV_LOGGING_LEVEL")
	_ = v.BindEnv("logging.file", "NDAV_LOGGING_FILE")
	_ = v.BindEnv("validation.file_size_limit", "NDAV_FILE_SIZE_LIMIT")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	var cfg Config

	// Missing config file is OK, we'll use env vars (and defaults upstream)
	data, err := os.ReadFile(expandedPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshaling config: %w", err)
		}
	}

	l.applyEnv(&cfg)

	return &cfg, nil
}

// applyEnv overlays environment variables on top of file values.
func (l *Loader) applyEnv(cfg *Config) {
	if s := l.v.GetString("logging.level"); s != "" {
		cfg.Logging.Level = s
	}
	if s := l.v.GetString("logging.file"); s != "" {
		cfg.Logging.File = s
	}
	if f := l.v.GetFloat64("validation.file_size_limit"); f != 0 {
		cfg.Validation.FileSizeLimit = f
	}
}

// LoadWithDefaults loads configuration and fills empty sections with defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// WithDefaults returns a copy of the config with empty sections filled in
// from DefaultConfig. Explicit values always win.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()
	out := *c

	if out.Collections == nil {
		out.Collections = map[string]CollectionConfig{}
	}
	if out.Validation.FileSizeLimit == 0 {
		out.Validation.FileSizeLimit = def.Validation.FileSizeLimit
	}
	if out.Validation.AllowedExtensions == nil {
		out.Validation.AllowedExtensions = def.Validation.AllowedExtensions
	}
	if out.Logging.Level == "" {
		out.Logging.Level = def.Logging.Level
	}
	if out.Logging.Format == "" {
		out.Logging.Format = def.Logging.Format
	}
	if out.Logging.File == "" {
		out.Logging.File = def.Logging.File
	}

	return &out
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
