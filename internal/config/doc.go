// Package config holds crawl configuration, validation, and the loaders for
// the optional YAML defaults file and the credential (cookie) file.
//
// # Architecture
//
// Configuration flows one way: CLI flags populate a Config, the YAML file
// fills in values the user did not set on the command line, Validate runs
// once before the crawl starts, and the populated Config is passed down by
// dependency injection. Nothing in this package is global or mutable after
// validation.
//
// The credential loader understands the storage-state export format used by
// browser automation tools: either a bare JSON array of cookies or an object
// with a "cookies" array. A credential file that is missing or malformed is
// a fatal configuration error, never a silent fallback to an anonymous
// session, because crawling a login-walled site without cookies produces a
// full output set of login redirect pages.
package config
