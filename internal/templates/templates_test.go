package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, []string{"behavioral", "demographics", "eeg", "mri", "subject"}, Types())
}

func TestHeader(t *testing.T) {
	tests := []struct {
		dataType string
		want     []string
	}{
		{
			dataType: "subject",
			want:     []string{"subjectkey", "src_subject_id", "interview_age", "interview_date", "sex"},
		},
		{
			dataType: "eeg",
			want:     []string{"subjectkey", "src_subject_id", "interview_age", "interview_date", "sex", "experiment_id", "eeg_file"},
		},
		{
			dataType: "mri",
			want:     []string{"subjectkey", "src_subject_id", "interview_age", "interview_date", "sex", "mri_file", "image_type", "acquisition_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dataType, func(t *testing.T) {
			header, err := Header(tt.dataType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, header)
		})
	}
}

func TestHeaderUnknownType(t *testing.T) {
	_, err := Header("genomics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template type")
	assert.Contains(t, err.Error(), "behavioral")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "eeg_template.csv")

	require.NoError(t, Write("eeg", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "experiment_id,eeg_file")

	// A second write must not clobber the file.
	err = Write("eeg", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
