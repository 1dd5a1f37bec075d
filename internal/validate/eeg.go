package validate

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// experimentIDPrefix is the required prefix for EEG experiment IDs.
const experimentIDPrefix = "EXP"

// EEGValidator validates EEG metadata files and, when a data directory is
// given, the data files they reference.
type EEGValidator struct {
	collectionID string
	required     []string
	now          time.Time
}

// NewEEGValidator creates a validator for the given collection.
// requiredFields must include eeg_file for EEG collections; experiment_id
// is always required.
func NewEEGValidator(collectionID string, requiredFields []string) *EEGValidator {
	required := append([]string{}, requiredFields...)
	if !contains(required, "experiment_id") {
		required = append(required, "experiment_id")
	}
	if !contains(required, "eeg_file") {
		required = append(required, "eeg_file")
	}

	return &EEGValidator{
		collectionID: collectionID,
		required:     required,
		now:          time.Now(),
	}
}

// DataType returns the data type this validator handles.
func (v *EEGValidator) DataType() string { return "eeg" }

// ValidateFile validates an EEG metadata file. When dataDir is non-empty,
// every referenced eeg_file must exist under it.
func (v *EEGValidator) ValidateFile(path, dataDir string) *Result {
	if _, err := os.Stat(path); err != nil {
		return invalid("metadata file not found: %s", path)
	}

	tbl, err := ReadTable(path)
	if err != nil {
		return invalid("error reading file: %v", err)
	}

	r := NewResult()
	if !checkRequiredColumns(tbl, v.required, r) {
		return r
	}

	checkCommonFields(tbl, v.now, r)

	experiments := map[string]bool{}
	fileTypes := map[string]int{}

	for i, row := range tbl.Rows {
		expID := strings.TrimSpace(tbl.Cell(row, "experiment_id"))
		if !strings.HasPrefix(expID, experimentIDPrefix) {
			r.Errorf("invalid experiment_id format in row %d: %q", i+1, expID)
		}
		experiments[expID] = true

		eegFile := strings.TrimSpace(tbl.Cell(row, "eeg_file"))
		if eegFile == "" {
			r.Errorf("missing eeg_file in row %d", i+1)
			continue
		}
		fileTypes[strings.TrimPrefix(filepath.Ext(eegFile), ".")]++

		if dataDir != "" {
			if _, err := os.Stat(filepath.Join(dataDir, eegFile)); err != nil {
				r.Errorf("EEG file not found: %s", eegFile)
			}
		}
	}

	if r.Valid {
		r.Metadata["total_files"] = tbl.Len()
		r.Metadata["unique_experiments"] = len(experiments)
		r.Metadata["file_types"] = fileTypes
	}

	return r
}
