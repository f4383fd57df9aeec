package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"docscrawl/internal/model"
)

func sampleRun() model.RunSummary {
	started := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	return model.RunSummary{
		ID:            "0f8fad5b-d9cb-469f-a165-70867728950e",
		StartURL:      "https://docs.example.org/en/Main_page",
		PathPrefix:    "/en/",
		OutputDir:     "crawl_output",
		StartedAt:     started,
		FinishedAt:    started.Add(95 * time.Second),
		Processed:     20,
		Succeeded:     18,
		Failed:        2,
		UniqueYoutube: 3,
		UniqueImages:  41,
	}
}

func TestSimpleWriterWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewSimpleWriter(&buf).Write(sampleRun())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		"Crawl summary",
		"https://docs.example.org/en/Main_page",
		"/en/",
		"crawl_output",
		"1m35s",
		"20 processed (18 ok, 2 failed)",
		"Unique images:  41",
		"Unique videos:  3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleWriterOmitsEmptyPrefix(t *testing.T) {
	t.Parallel()

	run := sampleRun()
	run.PathPrefix = ""

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).Write(run); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.Contains(buf.String(), "Path prefix") {
		t.Errorf("empty prefix should be omitted:\n%s", buf.String())
	}
}

func TestMarkdownWriterWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewMarkdownWriter(&buf).Write(sampleRun())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n == 0 {
		t.Error("reported zero bytes")
	}

	out := buf.String()
	for _, want := range []string{
		"# Crawl Report",
		"## Results",
		"`https://docs.example.org/en/Main_page`",
		"| Pages Processed",
		"| 20",
		"2 page(s) failed to render",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownWriterNoFailures(t *testing.T) {
	t.Parallel()

	run := sampleRun()
	run.Failed = 0
	run.Succeeded = run.Processed

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(run); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "All pages rendered successfully.") {
		t.Errorf("expected success tip:\n%s", out)
	}
	if strings.Contains(out, "failed to render") {
		t.Errorf("warning should be absent with zero failures:\n%s", out)
	}
}

func TestOrDash(t *testing.T) {
	t.Parallel()

	if got := orDash(""); got != "-" {
		t.Errorf("orDash(\"\") = %q", got)
	}
	if got := orDash("/en/"); got != "/en/" {
		t.Errorf("orDash(\"/en/\") = %q", got)
	}
}
