// Package fs writes encoded shorts records to files.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/shorts"
)

// DefaultOutputPath is used when no output path is configured.
const DefaultOutputPath = "data/shorts_output.json"

// ResolveOutputPath returns path made absolute against baseDir. An empty
// path resolves to DefaultOutputPath.
func ResolveOutputPath(baseDir, path string) string {
	if path == "" {
		path = DefaultOutputPath
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}

// Ensure FileExporter implements shorts.Exporter at compile time.
var _ shorts.Exporter = (*FileExporter)(nil)

// FileExporter implements shorts.Exporter by encoding records into a single
// file. The file is written next to its destination under a temporary name
// and renamed into place once fully encoded, so readers never observe a
// partial file.
type FileExporter struct {
	path    string
	encoder shorts.Encoder
}

// NewFileExporter creates a FileExporter writing to path with encoder.
func NewFileExporter(path string, encoder shorts.Encoder) *FileExporter {
	return &FileExporter{path: path, encoder: encoder}
}

// Path returns the destination file path.
func (e *FileExporter) Path() string {
	return e.path
}

// Export encodes records into the destination file, creating parent
// directories as needed. The run is not written.
func (e *FileExporter) Export(ctx context.Context, _ *shorts.Run, records []*shorts.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(e.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := e.encoder.Encode(tmp, records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, e.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
