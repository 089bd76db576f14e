// Package fs provides file-based export of analysis summaries.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/scholarly"
)

// Ensure Exporter implements scholarly.Exporter at compile time.
var _ scholarly.Exporter = (*Exporter)(nil)

// maxNameAttempts bounds the suffixes tried for a taken export name.
const maxNameAttempts = 1000

// Exporter writes analysis summaries as text files to a directory.
// Files are written to a temporary name and renamed into place. Existing
// files are never replaced.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter creates a new Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// Export writes the analysis summary and returns the path of the file.
func (e *Exporter) Export(ctx context.Context, a *scholarly.Analysis) (string, error) {
	if a == nil || a.Summary == "" {
		return "", scholarly.Errorf(scholarly.EINVALID, "analysis summary required")
	}

	created := a.CreatedAt
	if created.IsZero() {
		created = e.now()
	}

	return WriteFileUnique(filepath.Join(e.dir, scholarly.ExportFileName(created.Local(), "txt")), []byte(a.Summary))
}

// WriteFileUnique writes data to path, or to path with a _2, _3, ... suffix
// before the extension when the name is taken. It returns the path written.
func WriteFileUnique(path string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; n <= maxNameAttempts; n++ {
		candidate := path
		if n > 1 {
			candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
		}

		// Reserve the name so concurrent exports cannot pick it too.
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		f.Close()

		if err := WriteFileAtomic(candidate, data); err != nil {
			os.Remove(candidate)
			return "", err
		}
		return candidate, nil
	}
	return "", scholarly.Errorf(scholarly.ECONFLICT, "no free file name for %s", filepath.Base(path))
}

// WriteFileAtomic writes data to path via a temporary file in the same
// directory, creating parent directories as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
