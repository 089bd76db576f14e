package mock

import (
	"context"

	"github.com/fwojciec/scholarly"
)

var _ scholarly.EmailComposer = (*EmailComposer)(nil)

// EmailComposer is a mock implementation of scholarly.EmailComposer.
type EmailComposer struct {
	ComposeFn func(ctx context.Context, req scholarly.EmailRequest) (string, error)
}

func (c *EmailComposer) Compose(ctx context.Context, req scholarly.EmailRequest) (string, error) {
	return c.ComposeFn(ctx, req)
}
