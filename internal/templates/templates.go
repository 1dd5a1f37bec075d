// Package templates provides the NDA metadata submission templates.
package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.csv
var templateFS embed.FS

// Types returns the available template names, sorted.
func Types() []string {
	entries, err := templateFS.ReadDir("data")
	if err != nil {
		return nil
	}

	var types []string
	for _, e := range entries {
		types = append(types, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(types)
	return types
}

// Header returns the column names of a template.
func Header(dataType string) ([]string, error) {
	c, err := content(dataType)
	if err != nil {
		return nil, err
	}
	line := strings.TrimSpace(strings.SplitN(c, "\n", 2)[0])
	return strings.Split(line, ","), nil
}

// Write copies a template to path, creating parent directories as needed.
// Existing files are not overwritten.
func Write(dataType, path string) error {
	c, err := content(dataType)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(c), 0o644)
}

func content(dataType string) (string, error) {
	data, err := templateFS.ReadFile("data/" + dataType + ".csv")
	if err != nil {
		return "", fmt.Errorf("unknown template type %q (available: %s)",
			dataType, strings.Join(Types(), ", "))
	}
	return string(data), nil
}
