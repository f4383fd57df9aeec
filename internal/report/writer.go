// Package report renders end-of-run crawl summaries.
package report

import (
	"io"

	"docscrawl/internal/model"
)

// Writer outputs a run summary in some format.
//
// Design decision: We use an interface so the same summary can go to the
// terminal as plain text or to a file as markdown without the caller
// caring which.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(run model.RunSummary) (int, error)
}

// baseWriter provides the output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
