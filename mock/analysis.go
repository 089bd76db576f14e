package mock

import (
	"context"

	"github.com/fwojciec/scholarly"
)

var _ scholarly.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of scholarly.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, a *scholarly.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*scholarly.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter scholarly.AnalysisFilter) ([]*scholarly.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *scholarly.Analysis) error {
	return s.CreateAnalysisFn(ctx, a)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*scholarly.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter scholarly.AnalysisFilter) ([]*scholarly.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}
