package validate

import (
	"os"
	"strings"
	"time"
)

// Accepted demographics enumerations, matching the submission templates.
var (
	validRaces = []string{
		"White",
		"Black or African American",
		"Asian",
		"American Indian or Alaska Native",
		"Native Hawaiian or Other Pacific Islander",
		"Other",
	}

	validEthnicities = []string{"Hispanic", "Non-hispanic"}
)

// DemographicsValidator validates demographics metadata files.
type DemographicsValidator struct {
	collectionID string
	required     []string
	now          time.Time
}

// NewDemographicsValidator creates a validator for the given collection.
func NewDemographicsValidator(collectionID string, requiredFields []string) *DemographicsValidator {
	return &DemographicsValidator{
		collectionID: collectionID,
		required:     requiredFields,
		now:          time.Now(),
	}
}

// DataType returns the data type this validator handles.
func (v *DemographicsValidator) DataType() string { return "demographics" }

// ValidateFile validates a demographics file: common rules plus the
// race, ethnicity and gender_identity enumerations.
func (v *DemographicsValidator) ValidateFile(path, dataDir string) *Result {
	if _, err := os.Stat(path); err != nil {
		return invalid("file not found: %s", path)
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
	v.checkStructureFields(tbl, r)

	return r
}

// checkStructureFields validates the demographics-specific columns.
// Columns are optional; values are only checked when the column exists.
func (v *DemographicsValidator) checkStructureFields(tbl *Table, r *Result) {
	for i, row := range tbl.Rows {
		if tbl.HasColumn("race") {
			if race := tbl.Cell(row, "race"); !contains(validRaces, race) {
				r.Errorf("invalid race value in row %d: %q", i+1, race)
			}
		}

		if tbl.HasColumn("ethnicity") {
			if eth := tbl.Cell(row, "ethnicity"); !contains(validEthnicities, eth) {
				r.Errorf("invalid ethnicity value in row %d: %q", i+1, eth)
			}
		}

		// gender_identity: 1 = Male, 2 = Female, per template
		if tbl.HasColumn("gender_identity") {
			switch strings.TrimSpace(tbl.Cell(row, "gender_identity")) {
			case "1", "2":
			default:
				r.Errorf("invalid gender_identity in row %d: must be 1 or 2", i+1)
			}
		}
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
