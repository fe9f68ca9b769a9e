package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/eadindex"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	ext, err := extractFile(deps, c.Path)
	if err != nil {
		return err
	}

	sourcePath, err := filepath.Abs(c.Path)
	if err != nil {
		sourcePath = c.Path
	}

	aid := &eadindex.FindingAid{
		EADID:       ext.DocumentID,
		Title:       ext.Title,
		SourcePath:  sourcePath,
		RecordCount: len(ext.Records),
	}

	// Everything is validated before an existing finding aid is replaced.
	if err := validate(aid, ext.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.Path, eadindex.ErrorMessage(err))
		return err
	}

	existing, err := deps.FindingAids.FindFindingAids(deps.Ctx, eadindex.FindingAidFilter{EADID: &ext.DocumentID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 {
		if !c.Force {
			fmt.Fprintf(deps.Stderr, "error: finding aid %q is already indexed. Use --force to replace it.\n", ext.DocumentID)
			return eadindex.Errorf(eadindex.ECONFLICT, "finding aid %q already indexed", ext.DocumentID)
		}
		if err := deleteFindingAid(deps, existing[0]); err != nil {
			return err
		}
	}

	if err := deps.FindingAids.CreateFindingAid(deps.Ctx, aid); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		return err
	}

	if err := deps.Records.CreateRecords(deps.Ctx, ext.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
		_ = deps.FindingAids.DeleteFindingAid(deps.Ctx, aid.ID)
		return err
	}

	if err := deps.Index.IndexRecords(deps.Ctx, ext.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %v\n", err)
		_ = deps.FindingAids.DeleteFindingAid(deps.Ctx, aid.ID)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %q (%d records)\n", aid.EADID, aid.RecordCount)
	return nil
}

func validate(aid *eadindex.FindingAid, records []*eadindex.Record) error {
	if err := aid.Validate(); err != nil {
		return err
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
