package scholarly

import (
	"context"
	"time"
)

// Exporter writes an analysis summary to durable output.
type Exporter interface {
	// Export writes the summary and returns the path written.
	Export(ctx context.Context, a *Analysis) (path string, err error)
}

// ExportFileName returns the file name for an export created at t,
// e.g. scholar_summary_20240301_093015.txt.
func ExportFileName(t time.Time, ext string) string {
	return "scholar_summary_" + t.Format("20060102_150405") + "." + ext
}
