package validate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ndatools/ndav/internal/config"
	"github.com/ndatools/ndav/internal/testutil"
)

// writeXLSX writes a single-sheet workbook from a header and data rows.
func writeXLSX(t *testing.T, dir, name string, rows ...[]any) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
	return path
}

var behavioralExts = []string{".csv", ".xlsx"}

func TestBehavioralValidatorValid(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "task_results.csv", identityHeader,
		subjectRow("NDARAB123456", "SUBJ001", "240", "01/15/2024", "M"),
	)

	v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
	r := v.ValidateFile(path, "")

	require.True(t, r.Valid, "errors: %v", r.Errors)
	assert.Equal(t, 1, r.Metadata["total_rows"])
}

func TestBehavioralValidatorXLSX(t *testing.T) {
	header := []any{"subjectkey", "src_subject_id", "interview_age", "interview_date", "sex"}

	t.Run("valid workbook", func(t *testing.T) {
		dir := t.TempDir()
		path := writeXLSX(t, dir, "task_results.xlsx",
			header,
			[]any{"NDARAB123456", "SUBJ001", "240", "01/15/2024", "M"},
			[]any{"NDARCD789012", "SUBJ002", "300", "02/20/2024", "F"},
		)

		v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
		r := v.ValidateFile(path, "")

		require.True(t, r.Valid, "errors: %v", r.Errors)
		assert.Equal(t, 2, r.Metadata["total_rows"])
	})

	t.Run("field rules apply to workbook rows", func(t *testing.T) {
		dir := t.TempDir()
		path := writeXLSX(t, dir, "task_results.xlsx",
			header,
			[]any{"not-a-guid", "SUBJ001", "240", "01/15/2024", "M"},
		)

		v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
		r := v.ValidateFile(path, "")

		assert.False(t, r.Valid)
		require.Len(t, r.Errors, 1)
		assert.Contains(t, r.Errors[0], "invalid GUID format")
	})
}

func TestBehavioralValidatorRejectsExtension(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "task_results.txt", "some data")

	v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
	r := v.ValidateFile(path, "")

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "invalid file extension")
}

func TestBehavioralValidatorEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "task_results.csv", "")

	v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
	r := v.ValidateFile(path, "")

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "file is empty")
}

func TestBehavioralValidatorMissingFile(t *testing.T) {
	v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
	r := v.ValidateFile("/nonexistent/task_results.csv", "")

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "does not exist")
}

func TestBehavioralValidatorFieldRules(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCSV(t, dir, "task_results.csv", identityHeader,
		subjectRow("NDARAB123456", "", "240", "01/15/2024", "M"),
	)

	v := NewBehavioralValidator("C3996", config.IdentityFields, behavioralExts)
	r := v.ValidateFile(path, "")

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "missing src_subject_id")
}
