package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/scholarly"
	"gopkg.in/yaml.v3"
)

// writeAnalyses renders analyses in the requested format. A single
// analysis is written as an object, several as a list.
func writeAnalyses(w io.Writer, format string, analyses []*scholarly.Analysis) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(analyses) == 1 {
			return enc.Encode(analyses[0])
		}
		return enc.Encode(analyses)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		var err error
		if len(analyses) == 1 {
			err = enc.Encode(analyses[0])
		} else {
			err = enc.Encode(analyses)
		}
		if err != nil {
			return err
		}
		return enc.Close()

	default:
		for i, a := range analyses {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if len(analyses) > 1 {
				fmt.Fprintf(w, "# %s\n\n", a.SourceURL)
			}
			fmt.Fprintln(w, a.Summary)
		}
		return nil
	}
}
