package model

import (
	"testing"
	"time"
)

func TestRunSummaryDuration(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	run := RunSummary{
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
	}
	if got := run.Duration(); got != 90*time.Second {
		t.Errorf("Duration() = %v, want 90s", got)
	}
}

func TestRunSummaryDurationZeroTimes(t *testing.T) {
	t.Parallel()

	var run RunSummary
	if got := run.Duration(); got != 0 {
		t.Errorf("Duration() = %v, want 0", got)
	}
}
