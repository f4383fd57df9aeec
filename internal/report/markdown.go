package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"docscrawl/internal/model"
)

// MarkdownWriter outputs the run summary as GitHub Flavored Markdown,
// suitable for dropping into a project wiki or an issue.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(run model.RunSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Start URL", "`" + run.StartURL + "`"},
			{"Path Prefix", orDash(run.PathPrefix)},
			{"Output Directory", "`" + run.OutputDir + "`"},
			{"Started", run.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", run.Duration().Round(time.Second).String()},
		},
	})
	md.PlainText("")

	md.H2("Results")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Pages Processed", strconv.Itoa(run.Processed)},
			{"Succeeded", strconv.Itoa(run.Succeeded)},
			{"Failed", strconv.Itoa(run.Failed)},
			{"Unique Images", strconv.Itoa(run.UniqueImages)},
			{"Unique Video Links", strconv.Itoa(run.UniqueYoutube)},
		},
	})
	md.PlainText("")

	if run.Failed > 0 {
		md.Warningf("%d page(s) failed to render; see errors.jsonl in the output directory.", run.Failed)
	} else {
		md.Tip("All pages rendered successfully.")
	}

	return len(md.String()), md.Build()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
