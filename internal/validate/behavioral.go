package validate

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BehavioralValidator validates behavioral data files (.csv or .xlsx).
type BehavioralValidator struct {
	collectionID string
	required     []string
	extensions   []string
	now          time.Time
}

// NewBehavioralValidator creates a validator for the given collection.
// extensions is the allow-list from the configuration (dot-prefixed).
func NewBehavioralValidator(collectionID string, requiredFields, extensions []string) *BehavioralValidator {
	return &BehavioralValidator{
		collectionID: collectionID,
		required:     requiredFields,
		extensions:   extensions,
		now:          time.Now(),
	}
}

// DataType returns the data type this validator handles.
func (v *BehavioralValidator) DataType() string { return "behavioral" }

// ValidateFile validates a behavioral data file: format precheck, required
// columns, then the common field rules.
func (v *BehavioralValidator) ValidateFile(path, dataDir string) *Result {
	r := NewResult()
	if !v.checkFileFormat(path, r) {
		return r
	}

	tbl, err := ReadTable(path)
	if err != nil {
		return invalid("error reading file: %v", err)
	}

	if !checkRequiredColumns(tbl, v.required, r) {
		return r
	}

	checkCommonFields(tbl, v.now, r)

	if r.Valid {
		r.Metadata["total_rows"] = tbl.Len()
	}

	return r
}

// checkFileFormat verifies the file exists, has an allowed extension and
// is not empty.
func (v *BehavioralValidator) checkFileFormat(path string, r *Result) bool {
	info, err := os.Stat(path)
	if err != nil {
		r.Errorf("file does not exist: %s", path)
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !contains(v.extensions, ext) {
		r.Errorf("invalid file extension %q, must be one of: %s", ext, strings.Join(v.extensions, ", "))
		return false
	}

	if info.Size() == 0 {
		r.Errorf("file is empty")
		return false
	}

	return true
}
