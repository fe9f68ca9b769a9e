// Package fs provides file-based export of component records.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/eadindex"
	"gopkg.in/yaml.v3"
)

// RecordPath converts a record to a file name relative to its finding aid
// directory. Path separators in the ref are replaced so every record lands
// directly in that directory.
// Example: ref "aspace/123" → aspace_123.yml
func RecordPath(record *eadindex.Record) string {
	name := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(record.Ref)
	return name + ".yml"
}

// FormatRecord renders a record's field mapping as YAML.
func FormatRecord(record *eadindex.Record) ([]byte, error) {
	b, err := yaml.Marshal(record.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to encode record %q: %w", record.ID, err)
	}
	return b, nil
}

// Ensure Writer implements eadindex.RecordWriter at compile time.
var _ eadindex.RecordWriter = (*Writer)(nil)

// Writer writes records as YAML files with atomic update semantics.
// Records are written to baseDir/name.tmp and moved to baseDir/name on
// Commit; Abort discards them.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer. name is usually the finding aid's EADID.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// WriteRecord writes one record to the pending directory.
func (w *Writer) WriteRecord(ctx context.Context, record *eadindex.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	content, err := FormatRecord(record)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.tempDir(), RecordPath(record)), content, 0644)
}

// Commit replaces the final directory with the pending records.
func (w *Writer) Commit() error {
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort discards pending records.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
