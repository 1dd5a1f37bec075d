package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/output"
	"github.com/ndatools/ndav/internal/validate"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var (
		sequential bool
		dataDir    string
	)

	cmd := &cobra.Command{
		Use:   "validate [collection...]",
		Short: "Validate collection data",
		Long: `Validate research data collections against NDA submission requirements.

Named collections must exist in the configuration; with no arguments,
every configured collection is validated. Per-file validators run in
parallel within each collection unless --sequential is set.

Exits with code 2 when any file fails validation.

Examples:
  # Validate all configured collections
  ndav validate

  # Validate one collection from a different data directory
  ndav validate C3996 --data-dir /mnt/staging/C3996

  # Validate two collections, one file at a time
  ndav validate C3996 C4223 --sequential`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, sequential, dataDir)
		},
	}

	cmd.Flags().BoolVar(&sequential, "sequential", false, "Validate files one at a time")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Override the collection's data directory (single collection only)")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, sequential bool, dataDir string) error {
	ids := args
	if len(ids) == 0 {
		for id := range ndavConfig.Collections {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}

	if len(ids) == 0 {
		return WrapNotFound(
			fmt.Errorf("no collections configured"),
			"nothing to validate (add collections to the config file)",
		)
	}

	if dataDir != "" && len(ids) != 1 {
		return fmt.Errorf("--data-dir requires exactly one collection argument")
	}

	var (
		rows      []output.CollectionSummary
		allValid  = true
		hasErrors bool
	)

	for _, id := range ids {
		cv, err := validate.NewCollectionValidator(id, ndavConfig)
		if err != nil {
			return WrapNotFound(err, "unknown collection")
		}

		var summary *validate.Summary
		action := func() error {
			var verr error
			summary, verr = cv.Validate(cmd.Context(), validate.Options{
				DataDir:    dataDir,
				Sequential: sequential,
			})
			return verr
		}

		if err := output.RunWithSpinner(cmd.Context(), action,
			output.WithTitle("Validating "+id)); err != nil {
			return err
		}

		printCollectionResults(summary)
		rows = append(rows, summaryRows(summary)...)

		if !summary.AllValid {
			allValid = false
		}
		if summary.ErrorCount > 0 {
			hasErrors = true
		}
	}

	output.Println("")
	output.Println(output.RenderSummaryTable(rows))

	if !allValid || hasErrors {
		return NewExitError(
			fmt.Errorf("validation failed"),
			ExitValidationError,
		)
	}

	output.Println(output.FormatCheckmark("All collections valid"))
	return nil
}

// printCollectionResults writes one status line per validated file,
// followed by its errors and warnings.
func printCollectionResults(summary *validate.Summary) {
	for _, tr := range summary.Results {
		status := output.StatusValid
		switch {
		case !tr.Result.Valid:
			status = output.StatusInvalid
		case len(tr.Result.Warnings) > 0:
			status = output.StatusWarning
		}

		output.Println(output.FormatFileLine(
			summary.CollectionID, tr.DataType, filepath.Base(tr.File), status))

		for _, e := range tr.Result.Errors {
			output.Println("  " + e)
		}
		for _, w := range tr.Result.Warnings {
			output.Println("  " + w)
		}
	}

	for _, f := range summary.OversizeFiles {
		output.Warn("file exceeds upload size limit, split before submission", "file", f)
	}
}

// summaryRows converts a collection summary into table rows.
func summaryRows(summary *validate.Summary) []output.CollectionSummary {
	rows := make([]output.CollectionSummary, 0, len(summary.Results))
	for _, tr := range summary.Results {
		status := output.StatusValid
		switch {
		case !tr.Result.Valid:
			status = output.StatusInvalid
		case len(tr.Result.Warnings) > 0:
			status = output.StatusWarning
		}

		rows = append(rows, output.CollectionSummary{
			CollectionID: summary.CollectionID,
			DataType:     tr.DataType,
			File:         filepath.Base(tr.File),
			Status:       status,
			Errors:       len(tr.Result.Errors),
			Warnings:     len(tr.Result.Warnings),
		})
	}
	return rows
}
