package main

import (
	"context"
	"io"

	"github.com/fwojciec/eadindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Extractor   eadindex.Extractor
	FindingAids eadindex.FindingAidService
	Records     eadindex.RecordService
	Index       eadindex.RecordIndex
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction and index operations to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract component records from a finding aid"`
	Index   IndexCmd   `cmd:"" help:"Extract a finding aid and store its records"`
	List    ListCmd    `cmd:"" help:"List indexed finding aids"`
	Records RecordsCmd `cmd:"" help:"List stored records of a finding aid"`
	Search  SearchCmd  `cmd:"" help:"Search indexed records"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a finding aid and its records"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" type:"existingfile" help:"EAD file"`
	Out  string `short:"o" type:"path" help:"Write one YAML file per record under this directory instead of JSON lines to stdout"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Path  string `arg:"" type:"existingfile" help:"EAD file"`
	Force bool   `short:"f" help:"Replace the finding aid if its EADID is already indexed. The old records are removed before the new ones are stored, so a failed store leaves the EADID unindexed."`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	EADID string `arg:"" name:"eadid" help:"Finding aid EADID"`
	Full  bool   `help:"Show all record fields as JSON"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	EADID string `arg:"" name:"eadid" help:"Finding aid EADID"`
	Force bool   `help:"Confirm deletion"`
}
