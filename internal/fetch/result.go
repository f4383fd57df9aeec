package fetch

import "docscrawl/internal/model"

// Links holds the link lists the in-page extraction script produced,
// already split by host relative to the page being rendered.
type Links struct {
	Internal []string
	External []string
}

// Result is the outcome of rendering one URL. Exactly one of the two shapes
// occurs: Success true with the content fields populated, or Success false
// with Error holding a human-readable reason. URL is always set.
type Result struct {
	URL     string
	Success bool

	// Error is the failure reason when Success is false.
	Error string

	Title       string
	Description string
	HTML        string
	Markdown    string
	Links       Links
	Images      []model.ImageRef

	// Screenshot is the full-page PNG, present only when capture was
	// requested and succeeded.
	Screenshot []byte
}

// failure builds a failed Result for a URL.
func failure(url string, err error) Result {
	return Result{URL: url, Success: false, Error: err.Error()}
}
