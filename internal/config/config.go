// Package config provides configuration loading and management.
package config

// Collection type enum values.
const (
	TypeBehavioral = "behavioral"
	TypeEEG        = "eeg"
	TypeMRI        = "mri"

	// TypeMetadata is not a collection type; it keys the extension
	// allow-list for metadata CSV files.
	TypeMetadata = "metadata"
)

// IdentityFields are the columns every collection must declare in
// required_fields, regardless of type.
var IdentityFields = []string{
	"subjectkey",
	"src_subject_id",
	"interview_age",
	"interview_date",
	"sex",
}

// LogLevels are the accepted logging.level values.
var LogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// CollectionConfig describes one data collection.
type CollectionConfig struct {
	// Type is the collection data type: behavioral, eeg, or mri.
	Type string `json:"type" mapstructure:"type"`

	// RequiredFields are the columns every record of the collection's
	// data files must carry. Always includes IdentityFields; eeg adds
	// eeg_file, mri adds mri_file.
	RequiredFields []string `json:"required_fields" mapstructure:"required_fields"`

	// DataDirectory is the path to the collection's data, relative to
	// the working directory unless absolute.
	DataDirectory string `json:"data_directory" mapstructure:"data_directory"`
}

// ValidationConfig holds file-level validation rules.
type ValidationConfig struct {
	// FileSizeLimit is the maximum single-file size in gigabytes.
	// Files over the limit must be split before upload.
	FileSizeLimit float64 `json:"file_size_limit" mapstructure:"file_size_limit"`

	// AllowedExtensions maps a data type to its permitted, dot-prefixed
	// file extensions.
	AllowedExtensions map[string][]string `json:"allowed_extensions" mapstructure:"allowed_extensions"`
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARNING, ERROR, CRITICAL.
	Level string `json:"level" mapstructure:"level"`

	// Format is the message format template. It is carried verbatim from
	// the original configuration document and validated to be non-empty;
	// the logger applies its own formatter.
	Format string `json:"format" mapstructure:"format"`

	// File is the log file path.
	File string `json:"file" mapstructure:"file"`
}

// Config is the full configuration document.
// Loaded from ~/.ndav/config.yaml, validated against the embedded CUE schema.
// Load-once and immutable after process start.
type Config struct {
	// Collections maps collection codes (e.g. C3996) to their settings.
	Collections map[string]CollectionConfig `json:"collections" mapstructure:"collections"`

	// Validation holds the file-type validation rules.
	Validation ValidationConfig `json:"validation" mapstructure:"validation"`

	// Logging holds the logging parameters.
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `ndav config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Collections: map[string]CollectionConfig{},
		Validation: ValidationConfig{
			FileSizeLimit: 2.5,
			AllowedExtensions: map[string][]string{
				TypeEEG:        {".set", ".edf", ".bdf"},
				TypeMRI:        {".nii", ".dcm"},
				TypeBehavioral: {".csv", ".xlsx"},
				TypeMetadata:   {".csv"},
			},
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "%(asctime)s - %(levelname)s - %(message)s",
			File:   "nda_validation.log",
		},
	}
}

// Collection returns the configuration for a collection code.
func (c *Config) Collection(code string) (CollectionConfig, bool) {
	cc, ok := c.Collections[code]
	return cc, ok
}

// ExtensionsFor returns the allowed extensions for a data type.
func (c *Config) ExtensionsFor(dataType string) []string {
	return c.Validation.AllowedExtensions[dataType]
}

// FileSizeLimitBytes returns the file size limit in bytes.
func (c *Config) FileSizeLimitBytes() int64 {
	return int64(c.Validation.FileSizeLimit * 1024 * 1024 * 1024)
}
