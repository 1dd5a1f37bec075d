package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndatools/ndav/internal/output"
	"github.com/ndatools/ndav/internal/splitter"
)

// NewSplitCmd creates the split command.
func NewSplitCmd() *cobra.Command {
	var (
		outputDir string
		chunkSize int64
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split an oversized file into chunks",
		Long: `Split a data file over the upload size limit into chunks.

Chunks are named <name>_chunk<N><ext> and reassemble with a sorted
concatenation. Files already under the configured limit are left alone
unless --force is set.

Examples:
  # Split a large EEG recording into 5 MB chunks
  ndav split C3996/eeg/sub001_rest.set

  # Split into 50 MB chunks in a custom directory
  ndav split huge.set --chunk-size 52428800 --output-dir chunks/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd.Context(), args[0], outputDir, chunkSize, force)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Chunk output directory (default <file>_chunks)")
	cmd.Flags().Int64Var(&chunkSize, "chunk-size", splitter.DefaultChunkSize, "Chunk size in bytes")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Split even when the file is under the size limit")

	return cmd
}

func runSplit(ctx context.Context, path, outputDir string, chunkSize int64, force bool) error {
	if !force {
		over, err := splitter.NeedsSplit(path, ndavConfig.FileSizeLimitBytes())
		if err != nil {
			return WrapNotFound(err, "cannot stat file")
		}
		if !over {
			output.Info("file is under the size limit, no split needed",
				"file", path,
				"limit_gb", ndavConfig.Validation.FileSizeLimit,
			)
			return nil
		}
	}

	if outputDir == "" {
		base := filepath.Base(path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outputDir = filepath.Join(filepath.Dir(path), stem+"_chunks")
	}

	var result *splitter.Result
	action := func() error {
		var serr error
		result, serr = splitter.Split(path, outputDir, chunkSize)
		return serr
	}
	if err := output.RunWithSpinner(ctx, action,
		output.WithTitle("Splitting "+filepath.Base(path))); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Split %s into %d chunk(s) under %s", filepath.Base(path), len(result.Chunks), outputDir)))
	return nil
}
