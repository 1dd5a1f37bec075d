// Package validate implements collection data validation for NDA submissions.
package validate

import "fmt"

// Result is the outcome of validating a single metadata or data file.
type Result struct {
	// Valid is true when no errors were found. Warnings do not affect it.
	Valid bool

	// Errors are the validation failures, one message per finding.
	Errors []string

	// Warnings flag data quality issues that do not block submission.
	Warnings []string

	// Metadata carries summary statistics collected during validation.
	// Only populated for valid files.
	Metadata map[string]any
}

// NewResult returns an empty, valid Result.
func NewResult() *Result {
	return &Result{
		Valid:    true,
		Metadata: map[string]any{},
	}
}

// Errorf records a validation error and marks the result invalid.
func (r *Result) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

// Warnf records a warning.
func (r *Result) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// invalid builds a Result carrying a single error.
func invalid(format string, args ...any) *Result {
	r := NewResult()
	r.Errorf(format, args...)
	return r
}

// TaskResult pairs a Result with the file and data type it describes.
type TaskResult struct {
	// DataType is one of subject, demographics, behavioral, eeg, mri.
	DataType string

	// File is the validated file path.
	File string

	// Result is the validation outcome.
	Result *Result
}

// Summary aggregates the results of a collection run.
type Summary struct {
	// CollectionID is the collection code.
	CollectionID string

	// AllValid is true when every task produced a valid Result.
	AllValid bool

	// ErrorCount is the total number of errors across tasks.
	ErrorCount int

	// WarningCount is the total number of warnings across tasks.
	WarningCount int

	// Results holds the per-file outcomes, ordered by data type then file.
	Results []TaskResult

	// OversizeFiles lists collection files over the upload size limit.
	// Each one counts as a warning.
	OversizeFiles []string
}

// summarize builds a Summary from task results.
func summarize(collectionID string, results []TaskResult) *Summary {
	s := &Summary{
		CollectionID: collectionID,
		AllValid:     true,
		Results:      results,
	}

	for _, tr := range results {
		if !tr.Result.Valid {
			s.AllValid = false
		}
		s.ErrorCount += len(tr.Result.Errors)
		s.WarningCount += len(tr.Result.Warnings)
	}

	return s
}
