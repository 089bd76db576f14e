package main

import (
	"fmt"

	"github.com/fwojciec/scholarly"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	a, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	return writeAnalyses(deps.Stdout, c.Format, []*scholarly.Analysis{a})
}
