package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidGUID(t *testing.T) {
	tests := []struct {
		name string
		guid string
		want bool
	}{
		{"standard GUID", "NDARAB123456", true},
		{"pseudoGUID", "NDAR_INVAB123456", true},
		{"lowercase suffix", "NDARab123456", false},
		{"too short", "NDARAB12", false},
		{"too long", "NDARAB1234567", false},
		{"wrong prefix", "XNDAAB123456", false},
		{"pseudoGUID short", "NDAR_INVAB12", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidGUID(tt.guid))
		})
	}
}

func TestCheckAge(t *testing.T) {
	tests := []struct {
		name    string
		age     string
		wantErr bool
	}{
		{"valid months", "240", false},
		{"zero", "0", false},
		{"max", "1200", false},
		{"fractional", "36.5", false},
		{"negative", "-1", true},
		{"over max", "1201", true},
		{"not a number", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult()
			checkAge(tt.age, 0, r)
			assert.Equal(t, !tt.wantErr, r.Valid)
		})
	}
}

func TestCheckDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid date", "01/15/2024", false},
		{"today", "06/15/2024", false},
		{"future date", "01/15/2030", true},
		{"wrong format", "2024-01-15", true},
		{"not a date", "yesterday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult()
			checkDate(tt.date, 0, now, r)
			assert.Equal(t, !tt.wantErr, r.Valid)
		})
	}
}

func TestCheckSex(t *testing.T) {
	for _, ok := range []string{"M", "F", "m", "f", " M "} {
		r := NewResult()
		checkSex(ok, 0, r)
		assert.True(t, r.Valid, "sex %q should be accepted", ok)
	}

	for _, bad := range []string{"X", "Male", "1", ""} {
		r := NewResult()
		checkSex(bad, 0, r)
		assert.False(t, r.Valid, "sex %q should be rejected", bad)
	}
}

func TestCheckRequiredColumns(t *testing.T) {
	tbl, err := newTable([][]string{
		{"subjectkey", "src_subject_id", "sex"},
	})
	require.NoError(t, err)

	t.Run("all present", func(t *testing.T) {
		r := NewResult()
		assert.True(t, checkRequiredColumns(tbl, []string{"subjectkey", "sex"}, r))
		assert.True(t, r.Valid)
	})

	t.Run("missing columns listed", func(t *testing.T) {
		r := NewResult()
		assert.False(t, checkRequiredColumns(tbl, []string{"subjectkey", "interview_age", "interview_date"}, r))
		require.Len(t, r.Errors, 1)
		assert.Contains(t, r.Errors[0], "interview_age, interview_date")
	})
}

func TestErrorRowNumbersAreOneBased(t *testing.T) {
	r := NewResult()
	checkGUID("bogus", 0, r)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0], "row 1")
}
