package config

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultMaxPages caps the crawl at a size suitable for trying the tool
	// against a new site. Larger sites need --max-pages raised, or 0 for an
	// unbounded crawl.
	DefaultMaxPages = 20

	// DefaultConcurrency is the number of pages rendered per batch. Each
	// concurrent page is a browser tab, so this is bounded by memory rather
	// than sockets. Three tabs keeps a typical headless Chrome under a
	// gigabyte.
	DefaultConcurrency = 3

	// DefaultDelay is the politeness pause between batches. Documentation
	// wikis are often run on modest hardware; half a second between bursts
	// keeps the crawl from looking like a scrape.
	DefaultDelay = 500 * time.Millisecond

	// DefaultTimeout is the per-page render deadline. It covers navigation,
	// script execution, and screenshot capture, so it is generous compared
	// to a plain HTTP timeout.
	DefaultTimeout = 60 * time.Second

	// DefaultOutputDir is where the JSONL files and screenshots land when
	// --out-dir is not given.
	DefaultOutputDir = "crawl_output"

	// DefaultUserAgent identifies the crawler in server logs.
	DefaultUserAgent = "docscrawl/1.0 (+https://github.com/nao1215/docscrawl)"

	// AppName is the application name used for XDG directory paths.
	AppName = "docscrawl"
)

// Config holds all options for one crawl run.
// It is populated from CLI flags plus the optional YAML defaults file, and
// passed through the application via dependency injection rather than
// global state.
type Config struct {
	// StartURL is the absolute URL the crawl begins from. Its host defines
	// the crawl scope together with PathPrefix.
	StartURL string

	// PathPrefix restricts the crawl to URLs whose path starts with this
	// prefix, e.g. "/docs/en/". Empty means the whole site.
	PathPrefix string

	// OutputDir is the directory for the JSONL outputs and screenshots.
	// It is created if it does not exist.
	OutputDir string

	// MaxPages is the page ceiling; 0 means unlimited.
	MaxPages int

	// Concurrency is the number of pages rendered per batch.
	Concurrency int

	// Delay is the pause between batches.
	Delay time.Duration

	// Timeout is the per-page render deadline.
	Timeout time.Duration

	// Screenshots enables full-page screenshot capture.
	Screenshots bool

	// CredentialFile is the path to a JSON cookie file for authenticated
	// crawls. Empty means crawl anonymously.
	CredentialFile string

	// Cookies holds the session cookies loaded from CredentialFile.
	Cookies []Cookie

	// UserAgent is sent with every page load.
	UserAgent string

	// Verbose enables debug-level log output.
	Verbose bool

	// ConfigFilePath is the path to the YAML defaults file. If empty, the
	// tool searches for .docscrawl in the current directory and then in the
	// user's home directory.
	ConfigFilePath string

	// DBDir is the directory for the run-history SQLite database.
	// When empty, run summaries are not persisted.
	DBDir string

	// MarkdownReport switches the end-of-run summary from plain text to
	// GitHub Flavored Markdown.
	MarkdownReport bool

	// ReportFile writes the summary to a file instead of stdout.
	ReportFile string
}

// NewConfig creates a Config with default values. Users override specific
// fields after creation; flags and the YAML file never see this struct's
// zero value.
func NewConfig() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		MaxPages:    DefaultMaxPages,
		Concurrency: DefaultConcurrency,
		Delay:       DefaultDelay,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for the crawler.
// On Linux: ~/.local/share/docscrawl
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
// It runs once after flag parsing and config-file merging, before any
// browser or file is opened.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StartURL) == "" {
		return ErrNoStartURL
	}
	u, err := url.Parse(c.StartURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidStartURL
	}
	if c.PathPrefix != "" && !strings.HasPrefix(c.PathPrefix, "/") {
		return ErrInvalidPathPrefix
	}
	if c.MaxPages < 0 {
		return ErrInvalidMaxPages
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
