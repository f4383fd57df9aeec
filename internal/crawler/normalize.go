package crawler

import (
	"net/url"
	"strings"
)

// noisyParams are query parameter keys (lowercased) that change the URL
// without changing the document: wiki revision selectors and print views.
// They are stripped during canonicalization so revisions of a page dedup to
// one frontier entry.
var noisyParams = map[string]bool{
	"oldid":     true,
	"printable": true,
	"diff":      true,
}

// Normalize canonicalizes a URL string: the fragment is removed, noisy query
// parameters are dropped, and the remaining parameters keep their original
// order and multiplicity. The canonical form is the dedup key for the whole
// crawl, so Normalize must be idempotent: Normalize(Normalize(u)) == Normalize(u).
//
// Normalize never fails. Input originates from arbitrary markup, so a string
// the URL parser rejects is returned trimmed rather than reported as an
// error; such strings never pass the scope check anyway.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return normalizeURL(u)
}

// ResolveAndNormalize resolves href against base and canonicalizes the
// result. A nil base or an unparseable href degrades to Normalize(href).
func ResolveAndNormalize(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if base == nil {
		return Normalize(href)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return Normalize(href)
	}
	return normalizeURL(base.ResolveReference(ref))
}

// normalizeURL canonicalizes an already parsed URL in place.
func normalizeURL(u *url.URL) string {
	u.Fragment = ""
	u.RawFragment = ""
	u.RawQuery = filterQuery(u.RawQuery)
	return u.String()
}

// filterQuery drops noisy parameters from a raw query string. The surviving
// key=value pairs are kept byte for byte, which preserves both their order
// and their original percent-encoding; re-encoding here would break
// idempotence for exotic but valid encodings.
func filterQuery(query string) string {
	if query == "" {
		return ""
	}

	kept := make([]string, 0, 4)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if noisyParams[strings.ToLower(key)] {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}
