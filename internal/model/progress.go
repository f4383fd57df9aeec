package model

import "time"

// Progress is a snapshot of crawl counters, emitted after every batch.
//
// Design decision: Progress is a value passed to a callback rather than a
// line printed by the crawler because the core should stay free of
// presentation concerns. The CLI logs it; other embedders can ship it to
// whatever observability layer they use.
type Progress struct {
	// Processed is the number of fetch results handled so far, successes
	// and failures both.
	Processed int `json:"processed"`

	// Succeeded is the number of pages appended to the pages log.
	Succeeded int `json:"succeeded"`

	// Failed is the number of fetches recorded to the error log.
	Failed int `json:"failed"`

	// Queued is the current frontier size.
	Queued int `json:"queued"`

	// UniqueYoutube is the number of distinct video URLs recorded.
	UniqueYoutube int `json:"unique_youtube"`

	// UniqueImages is the number of distinct image URLs recorded.
	UniqueImages int `json:"unique_images"`
}

// RunSummary describes one finished crawl run. It is saved to the
// run-history database and rendered by the report writers.
type RunSummary struct {
	// ID is the run identifier (UUID).
	ID string `json:"id"`

	// StartURL is the canonical URL the crawl began from.
	StartURL string `json:"start_url"`

	// PathPrefix is the in-scope path prefix the crawl was restricted to.
	PathPrefix string `json:"path_prefix"`

	// OutputDir is where the JSON-Lines logs were written.
	OutputDir string `json:"output_dir"`

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Final counters, identical in meaning to Progress.
	Processed     int `json:"processed"`
	Succeeded     int `json:"succeeded"`
	Failed        int `json:"failed"`
	UniqueYoutube int `json:"unique_youtube"`
	UniqueImages  int `json:"unique_images"`
}

// Duration returns the wall-clock length of the run.
func (r *RunSummary) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
