package scholarly

import (
	"context"
	"time"
)

// Analysis is a stored result of analysing one profile page.
type Analysis struct {
	ID          string    `json:"id" yaml:"id"`
	SourceURL   string    `json:"sourceUrl" yaml:"sourceUrl"`
	Fields      FieldSet  `json:"fields" yaml:"fields"`
	Profile     *Profile  `json:"profile" yaml:"profile"`
	Summary     string    `json:"summary" yaml:"summary"`
	SummaryHash string    `json:"summaryHash" yaml:"summaryHash"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "analysis source URL required")
	}
	if a.Profile == nil {
		return Errorf(EINVALID, "analysis profile required")
	}
	if a.Summary == "" {
		return Errorf(EINVALID, "analysis summary required")
	}
	return nil
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis stores a new analysis, assigning its ID and timestamp.
	CreateAnalysis(ctx context.Context, a *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AnalyzeProgress reports progress while analysing several profiles.
type AnalyzeProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// AnalyzeProgressFunc is called as profiles are processed.
type AnalyzeProgressFunc func(AnalyzeProgress)
