// Package splitter breaks files over the upload size limit into chunks.
package splitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndatools/ndav/internal/output"
)

// DefaultChunkSize is 5 MB.
const DefaultChunkSize int64 = 5 * 1024 * 1024

// Result describes a completed split.
type Result struct {
	// Source is the original file path.
	Source string

	// Chunks are the written chunk paths, in order.
	Chunks []string

	// TotalBytes is the number of bytes written across all chunks.
	TotalBytes int64
}

// NeedsSplit reports whether the file at path exceeds limit bytes.
func NeedsSplit(path string, limit int64) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return info.Size() > limit, nil
}

// maxChunks caps a split at the widest chunk number the zero-padded
// naming scheme can keep in sorted order.
const maxChunks = 100000

// Split writes the file at path into sequential chunks under outputDir.
// Chunks are named <stem>_chunk<NNNNN><ext>; the zero padding keeps a
// sorted concatenation identical to the original byte order.
// chunkSize <= 0 selects DefaultChunkSize.
func Split(path, outputDir string, chunkSize int64) (*Result, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	result := &Result{Source: path}
	buf := make([]byte, chunkSize)

	for chunkNum := 0; ; chunkNum++ {
		n, err := io.ReadFull(f, buf)
		if n == 0 {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", base, err)
			}
		}

		if chunkNum >= maxChunks {
			return nil, fmt.Errorf("%s needs more than %d chunks, increase the chunk size", base, maxChunks)
		}

		chunkPath := filepath.Join(outputDir, fmt.Sprintf("%s_chunk%05d%s", stem, chunkNum, ext))
		if werr := os.WriteFile(chunkPath, buf[:n], 0o644); werr != nil {
			return nil, fmt.Errorf("writing chunk: %w", werr)
		}

		result.Chunks = append(result.Chunks, chunkPath)
		result.TotalBytes += int64(n)
		output.Debug("wrote chunk", "file", base, "chunk", chunkNum, "bytes", n)

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", base, err)
		}
	}

	if len(result.Chunks) == 0 {
		return nil, fmt.Errorf("%s is empty", base)
	}

	output.Info("split complete", "file", base, "chunks", len(result.Chunks))
	return result, nil
}
