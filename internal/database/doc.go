// Package database persists run history in SQLite.
//
// Each completed crawl is stored as one row: scope, output location, and
// the final counters. The history answers "when did I last crawl this site
// and how big was it" without re-reading the JSONL outputs, and feeds the
// runs subcommand.
//
// Design decision: We use one database file in the XDG data directory for
// all runs rather than a file per run. Run rows are tiny and a single file
// keeps listing and cleanup trivial.
package database
