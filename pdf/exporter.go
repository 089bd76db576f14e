// Package pdf renders analysis summaries as PDF documents.
package pdf

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/scholarly"
	"github.com/fwojciec/scholarly/fs"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Exporter implements scholarly.Exporter at compile time.
var _ scholarly.Exporter = (*Exporter)(nil)

// Exporter writes analysis summaries as PDF files to a directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter creates a new Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// Export renders the analysis summary and returns the path of the file.
func (e *Exporter) Export(ctx context.Context, a *scholarly.Analysis) (string, error) {
	if a == nil || a.Summary == "" {
		return "", scholarly.Errorf(scholarly.EINVALID, "analysis summary required")
	}

	created := a.CreatedAt
	if created.IsZero() {
		created = e.now()
	}

	data, err := Render(a.SourceURL, a.Summary)
	if err != nil {
		return "", err
	}

	return fs.WriteFileUnique(filepath.Join(e.dir, scholarly.ExportFileName(created.Local(), "pdf")), data)
}

// Render lays out a summary as a single PDF document. Lines ending in a
// colon with no value are rendered as section headings.
func Render(sourceURL, summary string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Scholar Profile Summary", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Scholar Profile Summary", "", 1, "L", false, 0, "")
	if sourceURL != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.WriteLinkString(5, tr(sourceURL), sourceURL)
		pdf.Ln(6)
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 11)

	scanner := bufio.NewScanner(strings.NewReader(summary))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(3)
			continue
		}
		if strings.HasSuffix(s, ":") {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 7, tr(s), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		pdf.MultiCell(0, 5, tr(s), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
