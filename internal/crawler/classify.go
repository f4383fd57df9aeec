package crawler

import (
	"net/url"
	"strings"
)

// skipTokens flag administrative wiki URLs that render edit forms, revision
// histories, and diffs rather than documentation content. Matching is a
// case-insensitive substring check against the whole URL, because these
// tokens appear in both paths (special:) and query strings (action=edit).
var skipTokens = []string{
	"special:",
	"action=edit",
	"action=history",
	"veaction=edit",
	"printable=yes",
}

// videoHosts is the allow-list of video-hosting domains. A URL is a video
// link when its host equals one of these or is a subdomain of one.
var videoHosts = []string{
	"youtube.com",
	"www.youtube.com",
	"m.youtube.com",
	"youtu.be",
	"www.youtu.be",
}

// Scope describes the crawl boundary: one host, one path subtree.
type Scope struct {
	// Host is the target site's host, compared case-insensitively and
	// including any port.
	Host string

	// PathPrefix is the in-scope path prefix, e.g. "/docs/en/".
	PathPrefix string
}

// NewScope derives the crawl scope from the start URL's host and the
// configured path prefix. An empty prefix means the whole site.
func NewScope(start *url.URL, pathPrefix string) Scope {
	if pathPrefix == "" {
		pathPrefix = "/"
	}
	return Scope{Host: start.Host, PathPrefix: pathPrefix}
}

// InScope reports whether a canonical URL is eligible for crawling: http or
// https scheme, the target host, and a path under the configured prefix.
func (s Scope) InScope(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if !strings.EqualFold(u.Host, s.Host) {
		return false
	}
	return strings.HasPrefix(u.Path, s.PathPrefix)
}

// ShouldSkip reports whether a URL carries one of the administrative skip
// tokens. Skipped URLs are dropped silently; they are filter decisions, not
// errors.
func ShouldSkip(rawURL string) bool {
	lowered := strings.ToLower(rawURL)
	for _, token := range skipTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// IsVideoLink reports whether the URL's host is on the video-host
// allow-list, by exact match or as a subdomain.
func IsVideoLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, allowed := range videoHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
