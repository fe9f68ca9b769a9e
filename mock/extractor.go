package mock

import (
	"context"
	"io"

	"github.com/fwojciec/eadindex"
)

var _ eadindex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of eadindex.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, r io.Reader) (*eadindex.Extraction, error)
}

func (e *Extractor) Extract(ctx context.Context, r io.Reader) (*eadindex.Extraction, error) {
	return e.ExtractFn(ctx, r)
}

var _ eadindex.TextCleaner = (*TextCleaner)(nil)

// TextCleaner is a mock implementation of eadindex.TextCleaner.
type TextCleaner struct {
	CleanFn func(s string) string
}

func (c *TextCleaner) Clean(s string) string {
	return c.CleanFn(s)
}
