// Package model defines the record types shared across the crawler.
//
// The crawl produces four kinds of durable records (pages, images, video
// links, and errors), each appended to its own JSON-Lines log. The types in
// this package are the wire schema of those logs: downstream stages (markdown
// cleaning, chunking) parse them line by line after the crawl exits, so field
// names and shapes must stay stable.
//
// Design decision: Records live in their own package rather than inside the
// crawler because:
//  1. The sink, the run-history database, and the report writers all consume
//     them without needing crawl logic
//  2. It keeps the JSON contract in one reviewable place
//  3. It avoids import cycles between crawler and sink
package model
