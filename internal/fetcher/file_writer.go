package fetcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileWriter streams response bodies into the archive. Each destination is
// written as a .part file and renamed into place only when the transfer
// completed, so a failed entry never leaves a final file behind.
type FileWriter struct {
	root string
}

func NewFileWriter(root string) *FileWriter {
	return &FileWriter{root: root}
}

// Write copies r to the destination path (relative to the archive root),
// creating parent directories as needed. Returns the number of bytes written.
func (fw *FileWriter) Write(dest string, r io.Reader) (int64, error) {
	finalPath := filepath.Join(fw.root, dest)
	partPath := finalPath + ".part"

	if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
		return 0, fmt.Errorf("could not create destination directory: %w", err)
	}

	f, err := os.Create(partPath)
	if err != nil {
		return 0, fmt.Errorf("could not create part file: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(partPath)
		return n, fmt.Errorf("write failed after %d bytes: %w", n, err)
	}

	// Sync before rename so a crash can't leave a short final file
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(partPath)
		return n, err
	}

	if err := f.Close(); err != nil {
		os.Remove(partPath)
		return n, err
	}

	if err := os.Rename(partPath, finalPath); err != nil {
		os.Remove(partPath)
		return n, fmt.Errorf("could not finalize %s: %w", dest, err)
	}

	return n, nil
}

// Size reports the on-disk size of a destination, 0 if absent.
func (fw *FileWriter) Size(dest string) int64 {
	info, err := os.Stat(filepath.Join(fw.root, dest))
	if err != nil {
		return 0
	}
	return info.Size()
}
