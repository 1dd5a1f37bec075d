package validate

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ageSpreadWarnMonths triggers a data quality warning when the age
// standard deviation exceeds 20 years.
const ageSpreadWarnMonths = 240

// SubjectValidator validates research subject metadata files.
type SubjectValidator struct {
	collectionID string
	required     []string
	now          time.Time
}

// NewSubjectValidator creates a validator for the given collection.
func NewSubjectValidator(collectionID string, requiredFields []string) *SubjectValidator {
	return &SubjectValidator{
		collectionID: collectionID,
		required:     requiredFields,
		now:          time.Now(),
	}
}

// DataType returns the data type this validator handles.
func (v *SubjectValidator) DataType() string { return "subject" }

// ValidateFile validates a research subject metadata file.
// Summary statistics are collected only when the file is clean.
func (v *SubjectValidator) ValidateFile(path, dataDir string) *Result {
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

	if r.Valid {
		v.collectMetadata(tbl, r)
	}

	return r
}

// collectMetadata gathers subject count, sex distribution, age statistics
// and the interview date range, plus data quality warnings.
func (v *SubjectValidator) collectMetadata(tbl *Table, r *Result) {
	sexDist := map[string]int{}
	seen := map[string]bool{}
	duplicates := false

	var ages []float64
	var earliest, latest time.Time

	for _, row := range tbl.Rows {
		key := tbl.Cell(row, "subjectkey")
		if seen[key] {
			duplicates = true
		}
		seen[key] = true

		sexDist[tbl.Cell(row, "sex")]++

		if age, ok := parseFloat(tbl.Cell(row, "interview_age")); ok {
			ages = append(ages, age)
		}

		if d, err := time.Parse(interviewDateFormat, tbl.Cell(row, "interview_date")); err == nil {
			if earliest.IsZero() || d.Before(earliest) {
				earliest = d
			}
			if latest.IsZero() || d.After(latest) {
				latest = d
			}
		}
	}

	r.Metadata["total_subjects"] = tbl.Len()
	r.Metadata["sex_distribution"] = sexDist

	if len(ages) > 0 {
		r.Metadata["age_statistics"] = map[string]float64{
			"min_age_months":    sliceMin(ages),
			"max_age_months":    sliceMax(ages),
			"mean_age_months":   mean(ages),
			"median_age_months": median(ages),
		}
	}

	if !earliest.IsZero() {
		r.Metadata["date_range"] = map[string]string{
			"earliest": earliest.Format(interviewDateFormat),
			"latest":   latest.Format(interviewDateFormat),
		}
	}

	if duplicates {
		r.Warnf("duplicate subject keys found")
	}
	if stddev(ages) > ageSpreadWarnMonths {
		r.Warnf("large age variation detected")
	}
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func sliceMin(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func sliceMax(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64{}, xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
