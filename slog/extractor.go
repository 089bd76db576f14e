package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scholarly"
)

// Ensure LoggingExtractor implements scholarly.ProfileExtractor.
var _ scholarly.ProfileExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ProfileExtractor and logs what each call found.
type LoggingExtractor struct {
	next   scholarly.ProfileExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scholarly.ProfileExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs section counts.
func (e *LoggingExtractor) Extract(html string) (profile *scholarly.Profile, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if profile != nil {
			attrs = append(attrs,
				"name", profile.Author.Name != "",
				"interests", len(profile.Author.Interests),
				"metrics", len(profile.Author.Metrics),
				"publications", len(profile.Publications),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
