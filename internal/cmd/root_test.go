package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "ndav", root.Use)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"validate", "config", "template", "split", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootLoadsDefaultsWhenConfigMissing(t *testing.T) {
	// A missing config file is fine for commands that do not need
	// configured collections. The default log file lands in the
	// working directory, so run from a scratch dir.
	t.Chdir(t.TempDir())
	t.Setenv("NDAV_CONFIG", t.TempDir()+"/missing.yaml")
	configFlag = ""
	verboseFlag = false

	require.NoError(t, execRoot(t, "version"))
	require.NotNil(t, ndavConfig)
	assert.Equal(t, 2.5, ndavConfig.Validation.FileSizeLimit)
}
