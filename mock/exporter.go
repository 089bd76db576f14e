package mock

import (
	"context"

	"github.com/fwojciec/scholarly"
)

var _ scholarly.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of scholarly.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, a *scholarly.Analysis) (string, error)
}

func (e *Exporter) Export(ctx context.Context, a *scholarly.Analysis) (string, error) {
	return e.ExportFn(ctx, a)
}
