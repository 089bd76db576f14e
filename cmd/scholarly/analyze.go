package main

import (
	"fmt"
	"sync"

	"github.com/fwojciec/scholarly"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	fields := scholarly.AllFields()
	if len(c.Fields) > 0 {
		var err error
		fields, err = scholarly.ParseFields(c.Fields)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
			return err
		}
	}

	analyses, failed, err := c.analyze(deps, fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	if len(analyses) > 0 {
		if err := writeAnalyses(deps.Stdout, c.Format, analyses); err != nil {
			return err
		}
	}

	for _, a := range analyses {
		if a.ID != "" {
			fmt.Fprintf(deps.Stderr, "Saved analysis %s\n", a.ID)
		}
		if deps.Exporter != nil {
			path, err := deps.Exporter.Export(deps.Ctx, a)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "Exported to %s\n", path)
		}
	}

	if failed > 0 {
		return scholarly.Errorf(scholarly.EUNAVAILABLE, "%d of %d profiles failed", failed, len(c.URLs))
	}
	return nil
}

// analyze returns the successful analyses in input order and the number of failures.
func (c *AnalyzeCmd) analyze(deps *Dependencies, fields scholarly.FieldSet) ([]*scholarly.Analysis, int, error) {
	if len(c.URLs) == 1 {
		a, err := deps.Analyzer.Analyze(deps.Ctx, c.URLs[0], fields)
		if err != nil {
			return nil, 0, err
		}
		return []*scholarly.Analysis{a}, 0, nil
	}

	var mu sync.Mutex
	progress := func(p scholarly.AnalyzeProgress) {
		mu.Lock()
		defer mu.Unlock()
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed: %s: %s\n", p.Completed, p.Total, p.URL, scholarly.ErrorMessage(p.Error))
		}
	}

	results, err := deps.Analyzer.AnalyzeAll(deps.Ctx, c.URLs, fields, c.Concurrency, progress)
	if err != nil {
		return nil, 0, err
	}

	var analyses []*scholarly.Analysis
	for _, a := range results {
		if a != nil {
			analyses = append(analyses, a)
		}
	}
	return analyses, len(results) - len(analyses), nil
}
