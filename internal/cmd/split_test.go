package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndatools/ndav/internal/config"
	"github.com/ndatools/ndav/internal/testutil"
)

func TestSplitSkipsFilesUnderLimit(t *testing.T) {
	ndavConfig = config.DefaultConfig()
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "small.set", "tiny recording")

	require.NoError(t, runSplit(context.Background(), path, "", 0, false))

	// Nothing written.
	assert.NoFileExists(t, filepath.Join(dir, "small_chunks", "small_chunk00000.set"))
}

func TestSplitForce(t *testing.T) {
	ndavConfig = config.DefaultConfig()
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "rec.set", strings.Repeat("x", 300))

	require.NoError(t, runSplit(context.Background(), path, "", 100, true))

	chunkDir := filepath.Join(dir, "rec_chunks")
	assert.FileExists(t, filepath.Join(chunkDir, "rec_chunk00000.set"))
	assert.FileExists(t, filepath.Join(chunkDir, "rec_chunk00002.set"))
}

func TestSplitOverLimit(t *testing.T) {
	ndavConfig = config.DefaultConfig()
	// 1 KB limit so the fixture counts as oversized.
	ndavConfig.Validation.FileSizeLimit = 1.0 / (1024 * 1024)

	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "big.set", strings.Repeat("x", 2048))
	outDir := filepath.Join(dir, "out")

	require.NoError(t, runSplit(context.Background(), path, outDir, 1024, false))
	assert.FileExists(t, filepath.Join(outDir, "big_chunk00000.set"))
	assert.FileExists(t, filepath.Join(outDir, "big_chunk00001.set"))
}

func TestSplitMissingFile(t *testing.T) {
	ndavConfig = config.DefaultConfig()

	err := runSplit(context.Background(), "/nonexistent/big.set", "", 0, false)
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}
