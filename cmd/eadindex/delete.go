package main

import (
	"fmt"

	"github.com/fwojciec/eadindex"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return eadindex.Errorf(eadindex.EINVALID, "use --force to confirm deletion")
	}

	aid, err := findFindingAid(deps, c.EADID)
	if err != nil {
		return err
	}

	if err := deleteFindingAid(deps, aid); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted finding aid %q\n", aid.EADID)
	return nil
}

// deleteFindingAid removes a finding aid from storage and its records from
// the index. Stored records go with the finding aid.
func deleteFindingAid(deps *Dependencies, aid *eadindex.FindingAid) error {
	if err := deps.FindingAids.DeleteFindingAid(deps.Ctx, aid.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}
	if err := deps.Index.DeleteDocument(deps.Ctx, aid.EADID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}
	return nil
}
