package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/scholarly"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := scholarly.AnalysisFilter{Limit: c.Limit}
	if c.URL != "" {
		url, err := scholarly.ProfileURL(c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
			return err
		}
		filter.SourceURL = &url
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'scholarly analyze' to create one.")
		return nil
	}

	for _, a := range analyses {
		name := "-"
		if a.Profile != nil && a.Profile.Author.Name != "" {
			name = a.Profile.Author.Name
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", a.ID, a.CreatedAt.Local().Format(time.DateTime), name, a.SourceURL)
	}

	return nil
}
