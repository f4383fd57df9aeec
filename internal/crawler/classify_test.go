package crawler

import (
	"net/url"
	"testing"
)

// TestScopeInScope covers the three scope rules: scheme, host equality,
// path prefix.
func TestScopeInScope(t *testing.T) {
	t.Parallel()

	start, err := url.Parse("https://docs.example.org/en/Main_page")
	if err != nil {
		t.Fatal(err)
	}
	scope := NewScope(start, "/en/")

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"page under prefix", "https://docs.example.org/en/FAQ", true},
		{"prefix itself", "https://docs.example.org/en/", true},
		{"http scheme accepted", "http://docs.example.org/en/FAQ", true},
		{"host compared case-insensitively", "https://DOCS.EXAMPLE.ORG/en/FAQ", true},
		{"path outside prefix", "https://docs.example.org/fr/FAQ", false},
		{"path prefix is case-sensitive", "https://docs.example.org/EN/FAQ", false},
		{"different host", "https://forum.example.org/en/FAQ", false},
		{"subdomain is a different host", "https://www.docs.example.org/en/FAQ", false},
		{"ftp scheme rejected", "ftp://docs.example.org/en/FAQ", false},
		{"mailto rejected", "mailto:admin@example.org", false},
		{"relative URL rejected", "/en/FAQ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := scope.InScope(tt.url); got != tt.want {
				t.Errorf("InScope(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

// TestNewScopeEmptyPrefix verifies an empty prefix admits the whole site.
func TestNewScopeEmptyPrefix(t *testing.T) {
	t.Parallel()

	start, err := url.Parse("https://docs.example.org/en/Main_page")
	if err != nil {
		t.Fatal(err)
	}
	scope := NewScope(start, "")

	if !scope.InScope("https://docs.example.org/anything/at/all") {
		t.Error("empty prefix should admit any path on the host")
	}
	if scope.InScope("https://other.example.org/") {
		t.Error("empty prefix must not admit other hosts")
	}
}

// TestShouldSkip covers the administrative skip tokens.
func TestShouldSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"special page", "https://site/en/Special:RecentChanges", true},
		{"special token is case-insensitive", "https://site/en/SPECIAL:Log", true},
		{"edit action in query", "https://site/en/Page?action=edit", true},
		{"history action in query", "https://site/en/Page?action=history", true},
		{"visual editor", "https://site/en/Page?veaction=edit", true},
		{"print view", "https://site/en/Page?printable=yes", true},
		{"ordinary page", "https://site/en/Main_page", false},
		{"token as plain word does not match", "https://site/en/History_of_actions", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShouldSkip(tt.url); got != tt.want {
				t.Errorf("ShouldSkip(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

// TestIsVideoLink covers the video-host allow-list, including the subdomain
// rule and hosts that must not match.
func TestIsVideoLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"youtube watch URL", "https://www.youtube.com/watch?v=abc123", true},
		{"bare youtube host", "https://youtube.com/watch?v=abc123", true},
		{"mobile youtube", "https://m.youtube.com/watch?v=abc123", true},
		{"short link", "https://youtu.be/abc123", true},
		{"host compared case-insensitively", "https://WWW.YOUTUBE.COM/watch?v=x", true},
		{"subdomain of allowed host", "https://music.youtube.com/watch?v=x", true},
		{"vimeo is not allowed", "https://vimeo.com/12345", false},
		{"lookalike host rejected", "https://notyoutube.com/watch", false},
		{"allowed host as path only", "https://evil.example/youtube.com", false},
		{"empty host", "/watch?v=abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsVideoLink(tt.url); got != tt.want {
				t.Errorf("IsVideoLink(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
