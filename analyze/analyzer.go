// Package analyze orchestrates profile analysis. It coordinates fetching,
// page classification, extraction, summarisation, and storage of analyses.
package analyze

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/scholarly"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of profiles analysed in parallel by AnalyzeAll.
const DefaultConcurrency = 3

// Analyzer turns profile URLs into stored analyses.
type Analyzer struct {
	Fetcher   scholarly.Fetcher
	Extractor scholarly.ProfileExtractor

	// Fallback is used when Detector reports the page as blocked.
	Fallback scholarly.Fetcher
	Detector scholarly.PageDetector

	// Analyses persists results when set.
	Analyses scholarly.AnalysisService

	Summarizer  scholarly.Summarizer
	RetryDelays []time.Duration
	Log         LogFunc
	Now         func() time.Time
}

// Analyze fetches and analyses a single profile. An empty field set
// selects every field.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string, fields scholarly.FieldSet) (*scholarly.Analysis, error) {
	profileURL, err := scholarly.ProfileURL(rawURL)
	if err != nil {
		return nil, err
	}
	if fields == 0 {
		fields = scholarly.AllFields()
	}

	html, err := a.fetchPage(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	profile, err := a.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if profile.IsEmpty() {
		return nil, scholarly.Errorf(scholarly.ENOTFOUND, "no profile data found")
	}

	analysis := &scholarly.Analysis{
		SourceURL: profileURL,
		Fields:    fields,
		Profile:   profile,
		Summary:   a.Summarizer.Summarize(profile.Author, profile.Publications, fields),
		CreatedAt: a.now(),
	}

	if a.Analyses != nil {
		if err := a.Analyses.CreateAnalysis(ctx, analysis); err != nil {
			return nil, err
		}
	}

	return analysis, nil
}

// AnalyzeAll analyses several profiles with bounded concurrency. Results
// keep input order; a failed URL leaves a nil slot and is reported through
// progress. The returned error is non-nil only if the context is cancelled.
func (a *Analyzer) AnalyzeAll(
	ctx context.Context,
	urls []string,
	fields scholarly.FieldSet,
	concurrency int,
	progress scholarly.AnalyzeProgressFunc,
) ([]*scholarly.Analysis, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*scholarly.Analysis, len(urls))
	total := len(urls)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			analysis, err := a.Analyze(gctx, url, fields)
			results[i] = analysis

			done := int(completed.Add(1))
			if progress != nil {
				progress(scholarly.AnalyzeProgress{
					URL:       url,
					Completed: done,
					Total:     total,
					Error:     err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (a *Analyzer) fetchPage(ctx context.Context, url string) (string, error) {
	html, err := a.fetchWith(ctx, a.Fetcher, url)
	if err != nil {
		return "", err
	}
	if !a.blocked(html) {
		return html, nil
	}

	if a.Fallback == nil {
		return "", scholarly.Errorf(scholarly.EUNAVAILABLE, "profile page is blocked by a captcha; retry with a browser fetcher")
	}
	if a.Log != nil {
		a.Log("blocked page for %s, retrying with fallback fetcher", url)
	}

	html, err = a.fetchWith(ctx, a.Fallback, url)
	if err != nil {
		return "", err
	}
	if a.blocked(html) {
		return "", scholarly.Errorf(scholarly.EUNAVAILABLE, "profile page is blocked by a captcha")
	}
	return html, nil
}

func (a *Analyzer) fetchWith(ctx context.Context, f scholarly.Fetcher, url string) (string, error) {
	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, f.Fetch, a.Log, delays)
}

func (a *Analyzer) blocked(html string) bool {
	return a.Detector != nil && a.Detector.Detect(html) == scholarly.PageBlocked
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
