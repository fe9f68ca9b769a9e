package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/eadindex"
	"github.com/fwojciec/eadindex/bleve"
	"github.com/fwojciec/eadindex/bluemonday"
	"github.com/fwojciec/eadindex/etree"
	eadslog "github.com/fwojciec/eadindex/slog"
	"github.com/fwojciec/eadindex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and index paths. Set before calling Run().
	DBPath    string
	IndexPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Full-text index, opened only by commands that need it.
	Index *bleve.Index

	// Services for end-to-end testing.
	FindingAidService eadindex.FindingAidService
	RecordService     eadindex.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		IndexPath: defaultIndexPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Index != nil {
		err = m.Index.Close()
	}
	if m.DB != nil {
		if e := m.DB.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("eadindex"),
		kong.Description("Extract and index components of EAD finding aids."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'eadindex --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var extractor eadindex.Extractor = etree.NewExtractor(bluemonday.NewCleaner())
	if logger != nil {
		extractor = eadslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	cmd := strings.Fields(kongCtx.Command())[0]

	// extract works on files alone and never touches storage.
	if cmd == "extract" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set EADINDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}

	m.FindingAidService = sqlite.NewFindingAidService(m.DB)
	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.FindingAids = m.FindingAidService
	deps.Records = m.RecordService

	switch cmd {
	case "index", "search", "delete":
		m.Index, err = bleve.Open(m.IndexPath)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set EADINDEX_INDEX to use a different index path\n")
			return fmt.Errorf("failed to open index at %q: %w", m.IndexPath, err)
		}
		var index eadindex.RecordIndex = m.Index
		if logger != nil {
			index = eadslog.NewLoggingRecordIndex(index, logger)
		}
		deps.Index = index
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("EADINDEX_DB"); path != "" {
		return path
	}
	return filepath.Join(dataDir(), "eadindex.db")
}

func defaultIndexPath() string {
	if path := os.Getenv("EADINDEX_INDEX"); path != "" {
		return path
	}
	return filepath.Join(dataDir(), "bleve")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".eadindex")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
