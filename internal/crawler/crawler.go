package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"docscrawl/internal/fetch"
	"docscrawl/internal/model"
)

// Fetcher renders a batch of URLs concurrently and returns one result per
// URL, in any order. Per-URL failures are reported inside the results; the
// error return is reserved for context cancellation.
type Fetcher interface {
	FetchAll(ctx context.Context, urls []string) ([]fetch.Result, error)
}

// Sink receives the durable output of the crawl. Append calls must be
// independently durable: once a call returns nil the record survives a
// crash of the process.
type Sink interface {
	AppendPage(rec model.PageRecord) error
	AppendImage(rec model.ImageRecord) error
	AppendYoutubeLink(rec model.YoutubeLinkRecord) error
	AppendError(rec model.ErrorRecord) error
	SaveScreenshot(pageURL string, data []byte) (string, error)
}

// Crawler drives a breadth-first crawl of one documentation site. All
// traversal state lives here and is mutated only from Run's loop.
type Crawler struct {
	fetcher Fetcher
	sink    Sink
	scope   Scope

	// maxPages caps the number of processed pages; 0 means unlimited.
	maxPages int

	// maxConcurrent is the batch size handed to the fetcher.
	maxConcurrent int

	// delay is the politeness pause between batches.
	delay time.Duration

	// screenshots enables screenshot persistence for successful pages.
	screenshots bool

	logger     *slog.Logger
	onProgress func(model.Progress)

	frontier *Frontier

	processed int
	succeeded int
	failed    int

	// seenImages and seenYoutube enforce global media dedup: each unique
	// canonical media URL is recorded once, for the first page that
	// surfaced it.
	seenImages  map[string]struct{}
	seenYoutube map[string]struct{}
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithMaxPages caps the number of pages processed. 0 means unlimited.
func WithMaxPages(n int) Option {
	return func(c *Crawler) {
		c.maxPages = n
	}
}

// WithMaxConcurrent sets the fetch batch size.
func WithMaxConcurrent(n int) Option {
	return func(c *Crawler) {
		if n > 0 {
			c.maxConcurrent = n
		}
	}
}

// WithDelay sets the pause between batches.
func WithDelay(d time.Duration) Option {
	return func(c *Crawler) {
		c.delay = d
	}
}

// WithScreenshots enables screenshot persistence.
func WithScreenshots(enabled bool) Option {
	return func(c *Crawler) {
		c.screenshots = enabled
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// WithProgressFunc registers a callback invoked with a counter snapshot
// after every batch. The callback runs on the control loop, so it must not
// block for long.
func WithProgressFunc(fn func(model.Progress)) Option {
	return func(c *Crawler) {
		c.onProgress = fn
	}
}

// New creates a Crawler over the given collaborators.
func New(fetcher Fetcher, sink Sink, scope Scope, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher:       fetcher,
		sink:          sink,
		scope:         scope,
		maxConcurrent: 3,
		frontier:      NewFrontier(),
		seenImages:    make(map[string]struct{}),
		seenYoutube:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Run crawls breadth-first from startURL until the frontier empties or the
// page ceiling is reached. It returns the final counter snapshot. The only
// mid-crawl errors it returns are context cancellation and sink write
// failures; per-URL fetch failures are recorded and absorbed.
func (c *Crawler) Run(ctx context.Context, startURL string) (model.Progress, error) {
	c.frontier.Enqueue(Normalize(startURL))

	for c.frontier.Len() > 0 && (c.maxPages == 0 || c.processed < c.maxPages) {
		select {
		case <-ctx.Done():
			return c.snapshot(), ctx.Err()
		default:
		}

		batch := c.frontier.NextBatch(c.batchBudget())
		if len(batch) == 0 {
			break
		}

		results, err := c.fetcher.FetchAll(ctx, batch)
		if err != nil {
			return c.snapshot(), err
		}

		for _, res := range results {
			if err := c.handleResult(res); err != nil {
				return c.snapshot(), err
			}
		}

		progress := c.snapshot()
		c.logger.Debug("batch complete",
			"processed", progress.Processed,
			"queued", progress.Queued,
		)
		if c.onProgress != nil {
			c.onProgress(progress)
		}

		if c.delay > 0 && c.frontier.Len() > 0 {
			select {
			case <-ctx.Done():
				return c.snapshot(), ctx.Err()
			case <-time.After(c.delay):
			}
		}
	}

	return c.snapshot(), nil
}

// batchBudget returns the batch size for the next iteration, shrunk by
// whatever remains of the page ceiling.
func (c *Crawler) batchBudget() int {
	budget := c.maxConcurrent
	if c.maxPages > 0 {
		if remaining := c.maxPages - c.processed; remaining < budget {
			budget = remaining
		}
	}
	return budget
}

// handleResult routes one fetch result: failures to the error log, successes
// through extraction into the sink and the frontier. Sink write failures are
// returned because losing durable records is not a per-URL condition.
func (c *Crawler) handleResult(res fetch.Result) error {
	c.processed++
	pageURL := Normalize(res.URL)

	if !res.Success {
		c.failed++
		c.logger.Warn("fetch failed", "url", pageURL, "error", res.Error)
		if err := c.sink.AppendError(model.ErrorRecord{URL: pageURL, Error: res.Error}); err != nil {
			return fmt.Errorf("append error record: %w", err)
		}
		return nil
	}
	c.succeeded++

	base, err := url.Parse(pageURL)
	if err != nil {
		// The renderer reported an unparseable final URL; record what we
		// can without link extraction.
		base = nil
	}

	internal := NormalizeLinks(base, res.Links.Internal)
	external := NormalizeLinks(base, res.Links.External)
	if len(internal) == 0 && len(external) == 0 && base != nil {
		internal, external = FallbackLinks(base, res.HTML)
	}

	for _, link := range internal {
		if !c.scope.InScope(link) || ShouldSkip(link) {
			continue
		}
		c.frontier.Enqueue(link)
	}

	images := NormalizeImages(base, res.Images)
	for _, img := range images {
		if _, ok := c.seenImages[img.Src]; ok {
			continue
		}
		c.seenImages[img.Src] = struct{}{}
		rec := model.ImageRecord{PageURL: pageURL, Src: img.Src, Alt: img.Alt, Title: img.Title}
		if err := c.sink.AppendImage(rec); err != nil {
			return fmt.Errorf("append image record: %w", err)
		}
	}

	youtube := c.collectVideoLinks(external, res.HTML)
	for _, yt := range youtube {
		if _, ok := c.seenYoutube[yt]; ok {
			continue
		}
		c.seenYoutube[yt] = struct{}{}
		rec := model.YoutubeLinkRecord{PageURL: pageURL, YoutubeURL: yt}
		if err := c.sink.AppendYoutubeLink(rec); err != nil {
			return fmt.Errorf("append youtube record: %w", err)
		}
	}

	screenshotFile := ""
	if c.screenshots && len(res.Screenshot) > 0 {
		path, err := c.sink.SaveScreenshot(pageURL, res.Screenshot)
		if err != nil {
			// Screenshots are best-effort; the page record still lands.
			c.logger.Warn("screenshot not saved", "url", pageURL, "error", err)
		} else {
			screenshotFile = path
		}
	}

	page := model.PageRecord{
		URL:            pageURL,
		Title:          res.Title,
		Description:    res.Description,
		Markdown:       res.Markdown,
		HTML:           res.HTML,
		InternalLinks:  internal,
		ExternalLinks:  external,
		Images:         images,
		YoutubeLinks:   youtube,
		ScreenshotFile: screenshotFile,
	}
	if err := c.sink.AppendPage(page); err != nil {
		return fmt.Errorf("append page record: %w", err)
	}
	return nil
}

// collectVideoLinks merges video URLs from the external link list with ones
// recovered from raw markup, canonicalized, sorted, and deduplicated.
func (c *Crawler) collectVideoLinks(external []string, markup string) []string {
	set := make(map[string]struct{})
	for _, link := range external {
		if IsVideoLink(link) {
			set[link] = struct{}{}
		}
	}
	for _, raw := range VideoLinksFromMarkup(markup) {
		set[Normalize(raw)] = struct{}{}
	}
	return sortedKeys(set)
}

// snapshot returns the current counters.
func (c *Crawler) snapshot() model.Progress {
	return model.Progress{
		Processed:     c.processed,
		Succeeded:     c.succeeded,
		Failed:        c.failed,
		Queued:        c.frontier.Len(),
		UniqueYoutube: len(c.seenYoutube),
		UniqueImages:  len(c.seenImages),
	}
}
