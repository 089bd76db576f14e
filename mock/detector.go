package mock

import "github.com/fwojciec/scholarly"

var _ scholarly.PageDetector = (*PageDetector)(nil)

// PageDetector is a mock implementation of scholarly.PageDetector.
type PageDetector struct {
	DetectFn func(html string) scholarly.PageKind
}

func (d *PageDetector) Detect(html string) scholarly.PageKind {
	return d.DetectFn(html)
}
