package main

import (
	"fmt"

	"github.com/fwojciec/scholarly"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return scholarly.Errorf(scholarly.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.ID); err != nil {
		if scholarly.ErrorCode(err) == scholarly.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'scholarly history' to see stored analyses.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis %q\n", c.ID)
	return nil
}
