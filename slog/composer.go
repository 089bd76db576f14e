package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scholarly"
)

// Ensure LoggingComposer implements scholarly.EmailComposer.
var _ scholarly.EmailComposer = (*LoggingComposer)(nil)

// LoggingComposer wraps an EmailComposer with logging.
// Request text is never logged, only its size.
type LoggingComposer struct {
	next   scholarly.EmailComposer
	logger *slog.Logger
}

// NewLoggingComposer creates a new LoggingComposer.
func NewLoggingComposer(next scholarly.EmailComposer, logger *slog.Logger) *LoggingComposer {
	return &LoggingComposer{next: next, logger: logger}
}

// Compose delegates to the wrapped composer and logs the operation.
func (c *LoggingComposer) Compose(ctx context.Context, req scholarly.EmailRequest) (email string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("compose",
			"template_bytes", len(req.Template),
			"context_bytes", len(req.Context),
			"email_bytes", len(email),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Compose(ctx, req)
}
