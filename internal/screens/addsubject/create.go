package addsubject

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dayoung/studypal/internal/summarize"
)

// Summarizer is the slice of the backend client this screen needs.
type Summarizer interface {
	SummarizePDF(ctx context.Context, filename string, content io.Reader) (*summarize.HierarchicalSummary, error)
}

// PrepareSummary runs the summarization side of subject creation. An empty
// path or a non-PDF file bypasses the backend entirely and yields no
// summary; only `.pdf` uploads go over the wire. Any failure aborts the
// whole creation: the caller must not commit a subject when err != nil.
func PrepareSummary(ctx context.Context, client Summarizer, path string) (*summarize.HierarchicalSummary, error) {
	if path == "" || !summarize.IsPDF(path) {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return client.SummarizePDF(ctx, path, f)
}
