package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndatools/ndav/internal/testutil"
)

func execRoot(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestValidateCleanCollection(t *testing.T) {
	root := writeEEGCollection(t)
	writeTestConfig(t, root)

	require.NoError(t, execRoot(t, "validate", "C3996"))
}

func TestValidateAllConfiguredCollections(t *testing.T) {
	root := writeEEGCollection(t)
	writeTestConfig(t, root)

	// No arguments validates every configured collection.
	require.NoError(t, execRoot(t, "validate"))
}

func TestValidateFailureExitsWithValidationCode(t *testing.T) {
	root := writeEEGCollection(t)
	testutil.WriteCSV(t, root, filepath.Join("eeg", "bad.csv"),
		[]string{"subjectkey", "src_subject_id", "interview_age", "interview_date", "sex", "experiment_id", "eeg_file"},
		[]string{"not-a-guid", "SUBJ002", "240", "01/15/2024", "M", "EXP001", "sub001.set"},
	)
	writeTestConfig(t, root)

	err := execRoot(t, "validate", "C3996")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestValidateUnknownCollection(t *testing.T) {
	writeTestConfig(t, writeEEGCollection(t))

	err := execRoot(t, "validate", "C9999")
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestValidateDataDirRequiresSingleCollection(t *testing.T) {
	root := writeEEGCollection(t)
	writeTestConfig(t, root)

	err := execRoot(t, "validate", "C3996", "C3996", "--data-dir", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one collection")
}

func TestValidateDataDirOverride(t *testing.T) {
	override := writeEEGCollection(t)
	writeTestConfig(t, filepath.Join(t.TempDir(), "configured-but-absent"))

	// The configured directory does not exist; the override does.
	require.NoError(t, execRoot(t, "validate", "C3996", "--data-dir", override))
}

func TestValidateSequentialFlag(t *testing.T) {
	root := writeEEGCollection(t)
	writeTestConfig(t, root)

	require.NoError(t, execRoot(t, "validate", "C3996", "--sequential"))
}
