package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/eadindex"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	if _, err := findFindingAid(deps, c.EADID); err != nil {
		return err
	}

	records, err := deps.Records.FindRecords(deps.Ctx, eadindex.RecordFilter{DocumentID: &c.EADID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}

	if c.Full {
		enc := json.NewEncoder(deps.Stdout)
		for _, r := range records {
			if err := enc.Encode(r.Fields()); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Records for %s (%d total):\n\n", c.EADID, len(records))
	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "  %s\n     %s\n", r.ID, r.Heading)
	}

	return nil
}

// findFindingAid looks up a finding aid by EADID, reporting a missing one
// on stderr.
func findFindingAid(deps *Dependencies, eadid string) (*eadindex.FindingAid, error) {
	aids, err := deps.FindingAids.FindFindingAids(deps.Ctx, eadindex.FindingAidFilter{EADID: &eadid})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return nil, err
	}
	if len(aids) == 0 {
		fmt.Fprintf(deps.Stderr, "error: finding aid %q not found. Use 'eadindex list' to see indexed finding aids.\n", eadid)
		return nil, eadindex.Errorf(eadindex.ENOTFOUND, "finding aid %q not found", eadid)
	}
	return aids[0], nil
}
