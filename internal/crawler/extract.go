package crawler

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"docscrawl/internal/model"
)

// bareURLPattern matches URL-like substrings anywhere in raw markup. It is
// the recovery path for video references that live outside anchor tags,
// such as embed widgets and inline player config.
var bareURLPattern = regexp.MustCompile(`(?i)https?://[^\s"'<>]+`)

// NormalizeLinks canonicalizes a structured link list against the page URL
// and returns it sorted and deduplicated. Blank entries are dropped.
func NormalizeLinks(base *url.URL, raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	for _, href := range raw {
		if strings.TrimSpace(href) == "" {
			continue
		}
		link := ResolveAndNormalize(base, href)
		if link == "" {
			continue
		}
		seen[link] = struct{}{}
	}
	return sortedKeys(seen)
}

// FallbackLinks extracts anchor hrefs directly from raw markup and
// classifies them by host into internal and external lists. It is used when
// the renderer's structured link lists both come back empty.
//
// Design decision: We parse with golang.org/x/net/html rather than a regex
// because real documentation markup is full of malformed fragments the
// tokenizer handles correctly, and the parser gives us attribute access
// without quoting games.
func FallbackLinks(base *url.URL, markup string) (internal, external []string) {
	if markup == "" {
		return nil, nil
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, nil
	}

	internalSet := make(map[string]struct{})
	externalSet := make(map[string]struct{})

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" && !skipHref(href) {
				link := ResolveAndNormalize(base, href)
				if u, err := url.Parse(link); err == nil {
					switch {
					case u.Scheme != "http" && u.Scheme != "https":
						// drop
					case strings.EqualFold(u.Host, base.Host):
						internalSet[link] = struct{}{}
					default:
						externalSet[link] = struct{}{}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sortedKeys(internalSet), sortedKeys(externalSet)
}

// VideoLinksFromMarkup scans raw markup for bare URL-like substrings whose
// host is on the video allow-list. Trailing punctuation that the permissive
// pattern swallows is trimmed before classification.
func VideoLinksFromMarkup(markup string) []string {
	if markup == "" {
		return nil
	}
	seen := make(map[string]struct{})
	for _, match := range bareURLPattern.FindAllString(markup, -1) {
		candidate := strings.TrimRight(match, ").,;")
		if IsVideoLink(candidate) {
			seen[candidate] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// NormalizeImages resolves image sources to canonical absolute URLs.
// Entries without a usable src are dropped silently; media extraction is
// best-effort and a broken src is not worth an error record.
func NormalizeImages(base *url.URL, images []model.ImageRef) []model.ImageRef {
	out := make([]model.ImageRef, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img.Src) == "" {
			continue
		}
		src := ResolveAndNormalize(base, img.Src)
		if src == "" {
			continue
		}
		img.Src = src
		out = append(out, img)
	}
	return out
}

// skipHref reports whether an href is a non-navigable anchor value.
func skipHref(href string) bool {
	href = strings.TrimSpace(href)
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:")
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// sortedKeys returns a set's members as a sorted slice. Sorting makes link
// lists deterministic so re-runs produce byte-identical records.
func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
