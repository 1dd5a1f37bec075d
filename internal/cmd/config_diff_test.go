package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndatools/ndav/internal/testutil"
)

func TestConfigDiffEquivalent(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.yaml", "logging:\n  level: INFO\n  file: a.log\n")
	b := testutil.WriteFile(t, dir, "b.yaml", "logging:\n  file: a.log\n  level: INFO\n")

	require.NoError(t, runConfigDiff(nil, []string{a, b}))
}

func TestConfigDiffDifferent(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.yaml", "logging:\n  level: INFO\n")
	b := testutil.WriteFile(t, dir, "b.yaml", "logging:\n  level: DEBUG\n")

	err := runConfigDiff(nil, []string{a, b})
	require.Error(t, err)
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "configurations differ")
}

func TestConfigDiffMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.yaml", "logging: {}\n")

	err := runConfigDiff(nil, []string{a, "/nonexistent/b.yaml"})
	require.Error(t, err)
}
