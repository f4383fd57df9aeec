package model

// PageRecord is one successfully fetched page. It is created once per URL and
// appended to the pages log; records are never rewritten after the append.
type PageRecord struct {
	// URL is the canonical URL of the page (fragment stripped, noisy query
	// parameters removed). It is the dedup key for the whole crawl.
	URL string `json:"url"`

	// Title is the page title reported by the renderer. Empty when the page
	// has no <title>.
	Title string `json:"title"`

	// Description is the meta description, when present.
	Description string `json:"description"`

	// Markdown is the rendered page content converted to markdown. This is
	// what the cleaning stage consumes.
	Markdown string `json:"markdown"`

	// HTML is the raw rendered markup, kept for re-extraction.
	HTML string `json:"html"`

	// InternalLinks are canonical same-site links, sorted and unique.
	InternalLinks []string `json:"internal_links"`

	// ExternalLinks are canonical off-site links, sorted and unique.
	ExternalLinks []string `json:"external_links"`

	// Images are the image references found on the page.
	Images []ImageRef `json:"images"`

	// YoutubeLinks are canonical video URLs found on the page, sorted and
	// unique. Includes URLs recovered from embed widgets outside anchors.
	YoutubeLinks []string `json:"youtube_links"`

	// ScreenshotFile is the path of the saved screenshot, when capture is
	// enabled and the renderer produced one.
	ScreenshotFile string `json:"screenshot_file,omitempty"`
}

// ImageRef is a single image reference with its source resolved to a
// canonical absolute URL.
type ImageRef struct {
	Src   string `json:"src"`
	Alt   string `json:"alt,omitempty"`
	Title string `json:"title,omitempty"`
}

// ImageRecord attributes a unique image URL to the first page that surfaced
// it. Each canonical src appears at most once in the images log.
type ImageRecord struct {
	PageURL string `json:"page_url"`
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Title   string `json:"title,omitempty"`
}

// YoutubeLinkRecord attributes a unique video URL to the first page that
// surfaced it. Each canonical video URL appears at most once in the log.
type YoutubeLinkRecord struct {
	PageURL    string `json:"page_url"`
	YoutubeURL string `json:"youtube_url"`
}

// ErrorRecord is one failed fetch. Failures are terminal for their URL
// within a run; there is no retry record to pair it with.
type ErrorRecord struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}
