package main

import (
	"fmt"

	"github.com/fwojciec/eadindex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	hits, err := deps.Index.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching records.")
		return nil
	}

	for _, hit := range hits {
		r, err := deps.Records.FindRecordByID(deps.Ctx, hit.ID)
		if eadindex.ErrorCode(err) == eadindex.ENOTFOUND {
			// Index entry without a stored record.
			fmt.Fprintf(deps.Stdout, "%.3f  %s\n", hit.Score, hit.ID)
			continue
		} else if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%.3f  %s\n       %s\n", hit.Score, r.ID, r.Heading)
	}

	return nil
}
