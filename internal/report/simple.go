package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"docscrawl/internal/model"
)

// SimpleWriter outputs a human-readable text summary for the terminal.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary as plain text.
func (w *SimpleWriter) Write(run model.RunSummary) (int, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Crawl summary\n")
	fmt.Fprintf(&b, "=============\n")
	fmt.Fprintf(&b, "Start URL:      %s\n", run.StartURL)
	if run.PathPrefix != "" {
		fmt.Fprintf(&b, "Path prefix:    %s\n", run.PathPrefix)
	}
	fmt.Fprintf(&b, "Output:         %s\n", run.OutputDir)
	fmt.Fprintf(&b, "Duration:       %s\n", run.Duration().Round(time.Second))
	fmt.Fprintf(&b, "Pages:          %d processed (%d ok, %d failed)\n",
		run.Processed, run.Succeeded, run.Failed)
	fmt.Fprintf(&b, "Unique images:  %d\n", run.UniqueImages)
	fmt.Fprintf(&b, "Unique videos:  %d\n", run.UniqueYoutube)

	return io.WriteString(w.output, b.String())
}
