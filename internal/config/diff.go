package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// DiffResult holds the outcome of a semantic comparison of two
// configuration documents.
type DiffResult struct {
	// Equivalent is true when the documents are semantically equal
	// (same keys, same values, mapping order ignored).
	Equivalent bool

	// Report is the rendered human-readable diff, empty when equivalent.
	Report string

	// Changes is the number of differences found.
	Changes int
}

// CompareFiles semantically compares two configuration documents on disk.
// Mapping order and formatting differences do not count as changes.
func CompareFiles(pathA, pathB string) (*DiffResult, error) {
	from, err := ytbx.LoadFile(pathA)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pathA, err)
	}

	to, err := ytbx.LoadFile(pathB)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pathB, err)
	}

	return compare(from, to)
}

// CompareDocuments semantically compares two in-memory YAML documents.
func CompareDocuments(nameA string, a []byte, nameB string, b []byte) (*DiffResult, error) {
	from, err := parseYAMLInput(nameA, a)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", nameA, err)
	}

	to, err := parseYAMLInput(nameB, b)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", nameB, err)
	}

	return compare(from, to)
}

// RoundTrip re-serializes the config and compares the result with the
// original document. A clean config round-trips with zero changes.
func RoundTrip(path string) (*DiffResult, error) {
	loader := NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	reserialized, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("re-serializing config: %w", err)
	}

	from, err := ytbx.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	to, err := parseYAMLInput("re-serialized", reserialized)
	if err != nil {
		return nil, fmt.Errorf("parsing re-serialized config: %w", err)
	}

	return compare(from, to)
}

func compare(from, to ytbx.InputFile) (*DiffResult, error) {
	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return nil, fmt.Errorf("comparing documents: %w", err)
	}

	if len(report.Diffs) == 0 {
		return &DiffResult{Equivalent: true}, nil
	}

	rendered, err := renderDyffReport(report)
	if err != nil {
		return nil, err
	}

	return &DiffResult{
		Equivalent: false,
		Report:     rendered,
		Changes:    len(report.Diffs),
	}, nil
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	result := buf.String()

	// Clean up output - remove trailing whitespace from lines
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
