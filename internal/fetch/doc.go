// Package fetch renders pages in a headless browser and extracts their
// content for the crawl engine.
//
// # Architecture
//
// One Session wraps one browser process for the lifetime of a crawl: an
// exec allocator plus a warm browser context, with session cookies injected
// once at startup. The Pool renders batches against that session, one
// browser tab per URL, bounded by errgroup.SetLimit. Tabs are cheap and
// isolated; the browser process is the expensive resource and is shared.
//
// Design decision: We render with a real browser rather than plain HTTP
// because documentation platforms increasingly assemble their pages in
// JavaScript, and a crawler that reads raw HTML sees empty shells. The
// extraction scripts run in the page, so the link and image lists reflect
// the DOM the reader actually gets.
//
// Failures during a page render never abort the batch. Each Result carries
// its own Success flag and error text; the crawl engine decides what to do
// with them.
package fetch
