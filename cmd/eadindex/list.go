package main

import (
	"fmt"

	"github.com/fwojciec/eadindex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	aids, err := deps.FindingAids.FindFindingAids(deps.Ctx, eadindex.FindingAidFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}

	if len(aids) == 0 {
		fmt.Fprintln(deps.Stdout, "No finding aids found. Use 'eadindex index' to add one.")
		return nil
	}

	for _, a := range aids {
		fmt.Fprintf(deps.Stdout, "%s  %d records  %s\n", a.EADID, a.RecordCount, a.Title)
	}

	return nil
}
