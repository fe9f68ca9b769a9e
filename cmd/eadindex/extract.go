package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/eadindex"
	"github.com/fwojciec/eadindex/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ext, err := extractFile(deps, c.Path)
	if err != nil {
		return err
	}

	if c.Out != "" {
		return c.writeFiles(deps, ext)
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, r := range ext.Records {
		if err := enc.Encode(r.Fields()); err != nil {
			return err
		}
	}
	return nil
}

func (c *ExtractCmd) writeFiles(deps *Dependencies, ext *eadindex.Extraction) error {
	// Records are grouped in a directory named after the EADID.
	if ext.DocumentID == "" {
		fmt.Fprintf(deps.Stderr, "error: %s has no eadid\n", c.Path)
		return eadindex.Errorf(eadindex.EINVALID, "document has no eadid")
	}

	w := fs.NewWriter(c.Out, ext.DocumentID)
	for _, r := range ext.Records {
		if err := w.WriteRecord(deps.Ctx, r); err != nil {
			_ = w.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", eadindex.ErrorMessage(err))
			return err
		}
	}
	if err := w.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records for %q to %s\n", len(ext.Records), ext.DocumentID, c.Out)
	return nil
}

// extractFile opens path and runs it through the extractor, reporting
// failures on stderr.
func extractFile(deps *Dependencies, path string) (*eadindex.Extraction, error) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}
	defer f.Close()

	ext, err := deps.Extractor.Extract(deps.Ctx, f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, eadindex.ErrorMessage(err))
		return nil, err
	}
	return ext, nil
}
