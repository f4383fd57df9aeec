package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and by the credential
// loader, and describe what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each validation site. Callers match them with
// errors.Is() while users still get a human-readable message. All of these
// are fatal: a bad configuration aborts the run before the first fetch.
var (
	// ErrNoStartURL is returned when no start URL is provided.
	ErrNoStartURL = errors.New("no start URL specified")

	// ErrInvalidStartURL is returned when the start URL cannot be parsed or
	// uses a scheme other than http or https.
	ErrInvalidStartURL = errors.New("invalid start URL: must be an absolute http or https URL")

	// ErrInvalidMaxPages is returned when the page ceiling is negative.
	// Use 0 to crawl without a ceiling.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be non-negative (0 means unlimited)")

	// ErrInvalidConcurrency is returned when the batch size is not positive.
	// A batch size of zero would mean the crawl never fetches anything.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidDelay is returned when the inter-batch delay is negative.
	// Use 0 for no delay between batches.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidTimeout is returned when the per-page timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidPathPrefix is returned when the path prefix does not start
	// with a slash. Prefix matching is against the URL path, so a relative
	// prefix can never match anything.
	ErrInvalidPathPrefix = errors.New("invalid path prefix: must start with '/'")

	// ErrCredentialNotFound is returned when the configured credential file
	// does not exist or cannot be read.
	ErrCredentialNotFound = errors.New("credential file not found")

	// ErrCredentialFormat is returned when the credential file is not a JSON
	// cookie array or a storage-state object with a "cookies" array.
	ErrCredentialFormat = errors.New("credential file format not recognized: expected a JSON cookie array or an object with a \"cookies\" array")
)
