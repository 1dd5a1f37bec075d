package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common field rules shared by every data type. Row indexes in messages
// are 1-based to match the source spreadsheets.

const (
	// interviewDateFormat is MM/DD/YYYY.
	interviewDateFormat = "01/02/2006"

	// maxAgeMonths is 100 years, the upper bound for interview_age.
	maxAgeMonths = 1200
)

var (
	// guidPattern matches standard NDA GUIDs.
	guidPattern = regexp.MustCompile(`^NDAR[A-Z0-9]{8}$`)

	// pseudoGUIDPattern matches pseudoGUIDs issued for subjects without
	// a registered GUID.
	pseudoGUIDPattern = regexp.MustCompile(`^NDAR_INV[A-Z0-9]{8}$`)
)

// ValidGUID reports whether s is a well-formed NDA GUID or pseudoGUID.
func ValidGUID(s string) bool {
	if strings.HasPrefix(s, "NDAR_INV") {
		return pseudoGUIDPattern.MatchString(s)
	}
	return guidPattern.MatchString(s)
}

// checkGUID validates the subjectkey value of one row.
func checkGUID(guid string, rowIdx int, r *Result) {
	if !ValidGUID(guid) {
		r.Errorf("invalid GUID format in row %d: %q", rowIdx+1, guid)
	}
}

// checkAge validates interview_age (months, 0..1200).
func checkAge(age string, rowIdx int, r *Result) {
	v, err := strconv.ParseFloat(strings.TrimSpace(age), 64)
	if err != nil {
		r.Errorf("invalid interview_age format in row %d: %q", rowIdx+1, age)
		return
	}
	if v < 0 || v > maxAgeMonths {
		r.Errorf("invalid interview_age in row %d: %s", rowIdx+1, age)
	}
}

// checkDate validates interview_date (MM/DD/YYYY, not in the future).
func checkDate(date string, rowIdx int, now time.Time, r *Result) {
	date = strings.TrimSpace(date)
	if date == "" {
		r.Errorf("missing interview_date in row %d", rowIdx+1)
		return
	}

	parsed, err := time.Parse(interviewDateFormat, date)
	if err != nil {
		r.Errorf("invalid interview_date in row %d: %q (expected MM/DD/YYYY)", rowIdx+1, date)
		return
	}

	if parsed.After(now) {
		r.Errorf("future interview_date in row %d: %s", rowIdx+1, date)
	}
}

// checkSex validates the sex value (M or F).
func checkSex(sex string, rowIdx int, r *Result) {
	switch strings.ToUpper(strings.TrimSpace(sex)) {
	case "M", "F":
	default:
		r.Errorf("invalid sex value in row %d: %q (must be M or F)", rowIdx+1, sex)
	}
}

// checkSubjectID validates src_subject_id is non-blank.
func checkSubjectID(id string, rowIdx int, r *Result) {
	if strings.TrimSpace(id) == "" {
		r.Errorf("missing src_subject_id in row %d", rowIdx+1)
	}
}

// checkCommonFields runs the shared rules over every row of a table.
func checkCommonFields(tbl *Table, now time.Time, r *Result) {
	for i, row := range tbl.Rows {
		checkGUID(tbl.Cell(row, "subjectkey"), i, r)
		checkAge(tbl.Cell(row, "interview_age"), i, r)
		checkDate(tbl.Cell(row, "interview_date"), i, now, r)
		checkSex(tbl.Cell(row, "sex"), i, r)
		checkSubjectID(tbl.Cell(row, "src_subject_id"), i, r)
	}
}

// checkRequiredColumns verifies all required columns are present.
// Returns false when columns are missing; further row checks are skipped
// in that case.
func checkRequiredColumns(tbl *Table, required []string, r *Result) bool {
	var missing []string
	for _, col := range required {
		if !tbl.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		r.Errorf("missing required columns: %s", strings.Join(missing, ", "))
		return false
	}

	return true
}
