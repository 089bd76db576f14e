package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scholarly"
)

// Ensure LoggingAnalysisService implements scholarly.AnalysisService.
var _ scholarly.AnalysisService = (*LoggingAnalysisService)(nil)

// LoggingAnalysisService wraps an AnalysisService with logging.
type LoggingAnalysisService struct {
	next   scholarly.AnalysisService
	logger *slog.Logger
}

// NewLoggingAnalysisService creates a new LoggingAnalysisService.
func NewLoggingAnalysisService(next scholarly.AnalysisService, logger *slog.Logger) *LoggingAnalysisService {
	return &LoggingAnalysisService{next: next, logger: logger}
}

func (s *LoggingAnalysisService) CreateAnalysis(ctx context.Context, a *scholarly.Analysis) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create analysis",
			"id", a.ID,
			"url", a.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateAnalysis(ctx, a)
}

func (s *LoggingAnalysisService) FindAnalysisByID(ctx context.Context, id string) (a *scholarly.Analysis, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find analysis",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindAnalysisByID(ctx, id)
}

func (s *LoggingAnalysisService) FindAnalyses(ctx context.Context, filter scholarly.AnalysisFilter) (as []*scholarly.Analysis, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find analyses",
			"count", len(as),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindAnalyses(ctx, filter)
}

func (s *LoggingAnalysisService) DeleteAnalysis(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete analysis",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAnalysis(ctx, id)
}
