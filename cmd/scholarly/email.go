package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/scholarly"
)

// Run executes the email command.
func (c *EmailCmd) Run(deps *Dependencies) error {
	template, err := c.readTemplate(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	analysis, err := c.resolve(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	email, err := deps.Composer.Compose(deps.Ctx, scholarly.EmailRequest{
		Template: template,
		Context:  analysis.Summary,
		Comments: c.Comments,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scholarly.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, email)
	return nil
}

// resolve returns the analysis named by Target, analysing the page first
// when Target is a URL.
func (c *EmailCmd) resolve(deps *Dependencies) (*scholarly.Analysis, error) {
	if strings.Contains(c.Target, "://") {
		return deps.Analyzer.Analyze(deps.Ctx, c.Target, scholarly.AllFields())
	}
	return deps.Analyses.FindAnalysisByID(deps.Ctx, c.Target)
}

func (c *EmailCmd) readTemplate(stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if c.Template == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(c.Template)
	}
	if err != nil {
		return "", scholarly.Errorf(scholarly.EINVALID, "cannot read template: %v", err)
	}
	return string(data), nil
}
