// Package sink persists crawl output: the append-only JSONL files and the
// per-page screenshots.
//
// # Architecture
//
// One Writer owns the four output files for a run. Every append encodes a
// single record and writes one line; records written before a crash are
// never lost because nothing is buffered across appends. Encoding never
// escapes HTML characters and leaves non-ASCII text verbatim, so the files
// stay greppable and diffable in the language the documentation is written
// in.
//
// Screenshot filenames are derived from the page's URL path, folded to a
// filesystem-safe slug. The mapping is deterministic so a re-crawl
// overwrites a page's previous screenshot instead of accumulating copies.
package sink
