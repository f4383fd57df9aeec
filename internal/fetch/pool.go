package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/errgroup"

	"docscrawl/internal/model"
)

// linksJS collects anchor hrefs from the rendered DOM and splits them by
// host. The browser resolves relative hrefs for us: a.href is always
// absolute.
const linksJS = `
(() => {
	const internal = [];
	const external = [];
	for (const a of document.querySelectorAll('a[href]')) {
		const href = a.href;
		if (!href || href.startsWith('javascript:') || href.startsWith('mailto:') || href.startsWith('tel:')) {
			continue;
		}
		try {
			const u = new URL(href);
			if (u.protocol !== 'http:' && u.protocol !== 'https:') {
				continue;
			}
			if (u.host === location.host) {
				internal.push(href);
			} else {
				external.push(href);
			}
		} catch (e) {}
	}
	return {internal, external};
})()`

// imagesJS collects every rendered image with its alt and title text.
const imagesJS = `
(() => {
	const out = [];
	for (const img of document.querySelectorAll('img')) {
		out.push({src: img.src || '', alt: img.alt || '', title: img.title || ''});
	}
	return out;
})()`

// descriptionJS reads the page's meta description, empty if absent.
const descriptionJS = `
(() => {
	const m = document.querySelector('meta[name="description"]');
	return m ? (m.content || '') : '';
})()`

// screenshotQuality is the PNG compression level passed to the browser.
const screenshotQuality = 90

// Pool renders batches of pages against one browser session.
type Pool struct {
	session     *Session
	timeout     time.Duration
	screenshots bool
	logger      *slog.Logger
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithTimeout sets the per-page render deadline.
func WithTimeout(d time.Duration) PoolOption {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithScreenshots enables full-page screenshot capture.
func WithScreenshots(enabled bool) PoolOption {
	return func(p *Pool) {
		p.screenshots = enabled
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) {
		p.logger = logger
	}
}

// NewPool creates a Pool over an existing browser session.
func NewPool(session *Session, opts ...PoolOption) *Pool {
	p := &Pool{
		session: session,
		timeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// FetchAll renders every URL in the batch concurrently, one browser tab
// each, and returns one Result per URL in input order. Per-page failures
// land in their Result; the error return fires only when the parent context
// is cancelled.
func (p *Pool) FetchAll(ctx context.Context, urls []string) ([]Result, error) {
	results := make([]Result, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(urls))
	for i, u := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.fetchOne(u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fetchOne renders a single page in its own tab and extracts its content.
func (p *Pool) fetchOne(pageURL string) Result {
	start := time.Now()
	tabCtx, cancel := p.session.NewTab(p.timeout)
	defer cancel()

	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
	); err != nil {
		return failure(pageURL, fmt.Errorf("navigation failed: %w", err))
	}

	res := Result{URL: pageURL, Success: true}

	// Title and description are nice-to-have; a page without them is still
	// worth recording.
	if err := chromedp.Run(tabCtx, chromedp.Title(&res.Title)); err != nil {
		p.logger.Debug("title extraction failed", "url", pageURL, "error", err)
	}
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(descriptionJS, &res.Description)); err != nil {
		p.logger.Debug("description extraction failed", "url", pageURL, "error", err)
	}

	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &res.HTML)); err != nil {
		return failure(pageURL, fmt.Errorf("html extraction failed: %w", err))
	}

	var links struct {
		Internal []string `json:"internal"`
		External []string `json:"external"`
	}
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(linksJS, &links)); err != nil {
		// The crawl engine falls back to parsing the raw HTML when both
		// lists come back empty.
		p.logger.Debug("link extraction failed", "url", pageURL, "error", err)
	}
	res.Links = Links{Internal: links.Internal, External: links.External}

	var images []struct {
		Src   string `json:"src"`
		Alt   string `json:"alt"`
		Title string `json:"title"`
	}
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(imagesJS, &images)); err != nil {
		p.logger.Debug("image extraction failed", "url", pageURL, "error", err)
	}
	for _, img := range images {
		res.Images = append(res.Images, model.ImageRef{Src: img.Src, Alt: img.Alt, Title: img.Title})
	}

	markdown, err := htmltomarkdown.ConvertString(res.HTML)
	if err != nil {
		p.logger.Debug("markdown conversion failed", "url", pageURL, "error", err)
	} else {
		res.Markdown = markdown
	}

	if p.screenshots {
		var shot []byte
		if err := chromedp.Run(tabCtx, chromedp.FullScreenshot(&shot, screenshotQuality)); err != nil {
			p.logger.Warn("screenshot capture failed", "url", pageURL, "error", err)
		} else {
			res.Screenshot = shot
		}
	}

	p.logger.Debug("page rendered",
		"url", pageURL,
		"html_bytes", len(res.HTML),
		"elapsed", time.Since(start),
	)
	return res
}
