package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Collections)
	assert.Equal(t, 2.5, cfg.Validation.FileSizeLimit)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "nda_validation.log", cfg.Logging.File)
	assert.NotEmpty(t, cfg.Logging.Format)

	// Every collection type has an extension allow-list out of the box.
	for _, dataType := range []string{TypeBehavioral, TypeEEG, TypeMRI, TypeMetadata} {
		assert.NotEmpty(t, cfg.Validation.AllowedExtensions[dataType], dataType)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(DefaultConfig()))
}

func TestExtensionsFor(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{".set", ".edf", ".bdf"}, cfg.ExtensionsFor(TypeEEG))
	assert.Nil(t, cfg.ExtensionsFor("unknown"))
}

func TestFileSizeLimitBytes(t *testing.T) {
	cfg := DefaultConfig()

	// 2.5 GB
	assert.Equal(t, int64(2684354560), cfg.FileSizeLimitBytes())
}

func TestCollection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Collections["C4223"] = CollectionConfig{
		Type:           TypeEEG,
		RequiredFields: append(append([]string{}, IdentityFields...), "eeg_file"),
		DataDirectory:  "data/C4223",
	}

	cc, ok := cfg.Collection("C4223")
	require.True(t, ok)
	assert.Equal(t, TypeEEG, cc.Type)

	_, ok = cfg.Collection("C0000")
	assert.False(t, ok)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills empty sections", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()

		assert.NotNil(t, cfg.Collections)
		assert.Equal(t, 2.5, cfg.Validation.FileSizeLimit)
		assert.Equal(t, "INFO", cfg.Logging.Level)
	})

	t.Run("explicit values win", func(t *testing.T) {
		cfg := (&Config{
			Validation: ValidationConfig{FileSizeLimit: 1.0},
			Logging:    LoggingConfig{Level: "DEBUG"},
		}).WithDefaults()

		assert.Equal(t, 1.0, cfg.Validation.FileSizeLimit)
		assert.Equal(t, "DEBUG", cfg.Logging.Level)
	})
}
