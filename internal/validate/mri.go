package validate

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// validImageTypes are the accepted MRI scan types.
var validImageTypes = []string{"T1", "T2", "fMRI", "DTI"}

// MRIValidator validates MRI metadata files and, when a data directory is
// given, the image files they reference.
type MRIValidator struct {
	collectionID string
	required     []string
	extensions   []string
	now          time.Time
}

// NewMRIValidator creates a validator for the given collection.
// extensions is the image file allow-list from the configuration.
func NewMRIValidator(collectionID string, requiredFields, extensions []string) *MRIValidator {
	required := append([]string{}, requiredFields...)
	if !contains(required, "mri_file") {
		required = append(required, "mri_file")
	}

	return &MRIValidator{
		collectionID: collectionID,
		required:     required,
		extensions:   extensions,
		now:          time.Now(),
	}
}

// DataType returns the data type this validator handles.
func (v *MRIValidator) DataType() string { return "mri" }

// ValidateFile validates an MRI metadata file. image_type and
// acquisition_date are checked when present; referenced image files are
// checked when dataDir is non-empty.
func (v *MRIValidator) ValidateFile(path, dataDir string) *Result {
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

	for i, row := range tbl.Rows {
		if tbl.HasColumn("image_type") {
			if it := strings.TrimSpace(tbl.Cell(row, "image_type")); !contains(validImageTypes, it) {
				r.Errorf("invalid image_type in row %d: %q (must be one of %s)",
					i+1, it, strings.Join(validImageTypes, ", "))
			}
		}

		if tbl.HasColumn("acquisition_date") {
			ad := strings.TrimSpace(tbl.Cell(row, "acquisition_date"))
			if _, err := time.Parse(interviewDateFormat, ad); err != nil {
				r.Errorf("invalid acquisition_date in row %d: %q (expected MM/DD/YYYY)", i+1, ad)
			}
		}

		v.checkImageFile(tbl, row, i, dataDir, r)
	}

	if r.Valid {
		r.Metadata["total_images"] = tbl.Len()
	}

	return r
}

// checkImageFile validates the mri_file reference of one row.
func (v *MRIValidator) checkImageFile(tbl *Table, row []string, rowIdx int, dataDir string, r *Result) {
	name := strings.TrimSpace(tbl.Cell(row, "mri_file"))
	if name == "" {
		r.Errorf("missing mri_file for subject %s", tbl.Cell(row, "subjectkey"))
		return
	}

	if !hasAllowedExtension(name, v.extensions) {
		r.Errorf("invalid image file format for %s in row %d", name, rowIdx+1)
	}

	if dataDir != "" {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			r.Errorf("image file not found: %s", name)
		}
	}
}

// hasAllowedExtension matches multi-part extensions too (.nii.gz).
func hasAllowedExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
