package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndatools/ndav/internal/testutil"
)

func TestCompareDocuments(t *testing.T) {
	t.Run("reordered mappings are equivalent", func(t *testing.T) {
		a := []byte(`
logging:
  level: INFO
  file: out.log
  format: fmt
validation:
  file_size_limit: 2.5
  allowed_extensions:
    eeg: [.set]
`)
		b := []byte(`
validation:
  allowed_extensions:
    eeg: [.set]
  file_size_limit: 2.5
logging:
  format: fmt
  file: out.log
  level: INFO
`)

		result, err := CompareDocuments("a", a, "b", b)
		require.NoError(t, err)
		assert.True(t, result.Equivalent)
		assert.Empty(t, result.Report)
	})

	t.Run("changed value is reported", func(t *testing.T) {
		a := []byte("logging:\n  level: INFO\n")
		b := []byte("logging:\n  level: DEBUG\n")

		result, err := CompareDocuments("a", a, "b", b)
		require.NoError(t, err)
		assert.False(t, result.Equivalent)
		assert.NotZero(t, result.Changes)
		assert.Contains(t, result.Report, "level")
	})
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	pathA := testutil.WriteFile(t, dir, "a.yaml", "logging:\n  level: INFO\n")
	pathB := testutil.WriteFile(t, dir, "b.yaml", "logging: {level: INFO}\n")

	result, err := CompareFiles(pathA, pathB)
	require.NoError(t, err)
	assert.True(t, result.Equivalent, "flow and block styles should be equivalent")
}

func TestRoundTrip(t *testing.T) {
	// Parsing then re-serializing the sample document must yield a
	// semantically equivalent structure.
	result, err := RoundTrip(writeSampleConfig(t))
	require.NoError(t, err)
	assert.True(t, result.Equivalent, "round trip should be lossless, got:\n%s", result.Report)
}
