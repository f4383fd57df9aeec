// Package crawler implements the breadth-first crawl engine.
//
// # Architecture
//
// The package is built around the Crawler type, a single-threaded control
// loop that owns all traversal state. Each iteration it takes a batch of
// URLs from the Frontier, dispatches them to a Fetcher that renders them
// concurrently, and then, back on the control loop, routes every result
// through the classifier and media extractor into the Sink, feeding newly
// discovered in-scope links back into the Frontier.
//
// Design decision: All frontier and dedup-set mutations happen on the
// control loop after a batch fully resolves, so there is exactly one logical
// writer to traversal state and no locking is needed. The price is that
// batches are strictly sequential; a continuous worker pool would pipeline
// better but changes completion ordering, so it is deliberately not done.
//
// # Components
//
//   - Normalize / ResolveAndNormalize: URL canonicalization (the dedup key)
//   - Scope, ShouldSkip, IsVideoLink: link classification
//   - FallbackLinks, VideoLinksFromMarkup, NormalizeImages: media extraction
//   - Frontier: BFS queue with queued/visited membership sets
//   - Crawler: the batch control loop
//
// # Failure handling
//
// A failed fetch is terminal for that URL: it is recorded to the error sink
// and never retried, and it cannot affect sibling URLs in the same or later
// batches. Only configuration-time errors abort a run.
package crawler
