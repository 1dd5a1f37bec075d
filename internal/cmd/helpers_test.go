package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ndatools/ndav/internal/testutil"
)

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// writeTestConfig writes a valid config file pointing one EEG collection
// at dataDir, routes NDAV_CONFIG to it, and resets the global flags.
func writeTestConfig(t *testing.T, dataDir string) string {
	t.Helper()
	dir := t.TempDir()

	content := fmt.Sprintf(`collections:
  C3996:
    type: eeg
    required_fields:
      - subjectkey
      - src_subject_id
      - interview_age
      - interview_date
      - sex
      - experiment_id
      - eeg_file
    data_directory: %s
validation:
  file_size_limit: 2.5
  allowed_extensions:
    eeg: [".set", ".edf", ".bdf"]
    mri: [".nii", ".dcm"]
    behavioral: [".csv", ".xlsx"]
    metadata: [".csv"]
logging:
  level: INFO
  format: "%%(asctime)s - %%(levelname)s - %%(message)s"
  file: %s
`, dataDir, filepath.Join(dir, "test.log"))

	path := testutil.WriteFile(t, dir, "config.yaml", content)
	t.Setenv("NDAV_CONFIG", path)

	configFlag = ""
	verboseFlag = false

	return path
}

// writeEEGCollection lays out a minimal valid EEG collection and returns
// its root directory.
func writeEEGCollection(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	testutil.TouchFile(t, root, "eeg", "sub001.set")
	testutil.WriteCSV(t, root, filepath.Join("eeg", "metadata.csv"),
		[]string{"subjectkey", "src_subject_id", "interview_age", "interview_date", "sex", "experiment_id", "eeg_file"},
		[]string{"NDARAB123456", "SUBJ001", "240", "01/15/2024", "M", "EXP001", "sub001.set"},
	)

	return root
}
