// Package main provides the entry point for the docscrawl CLI.
//
// docscrawl crawls a documentation site breadth-first within a host and
// path scope, renders each page in a headless browser, and writes the
// content as JSONL records.
//
// Usage:
//
//	docscrawl crawl https://docs.example.org/en/ --prefix /en/
//	docscrawl runs
//
// See --help for all available options.
package main

// main is the entry point for docscrawl.
func main() {
	Execute()
}
