package sink

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen caps the filename stem so deep wiki paths stay within
// filesystem name limits with room for the extension.
const maxSlugLen = 120

// foldDiacritics strips combining marks so accented documentation titles
// produce plain-ASCII-friendly filenames ("Géré" becomes "Gere").
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SaveScreenshot writes a page's screenshot under the screenshots
// directory and returns the path relative to the output directory. The
// filename is derived from the page URL, so saving the same page again
// overwrites the previous capture.
func (w *Writer) SaveScreenshot(pageURL string, data []byte) (string, error) {
	name := ScreenshotFilename(pageURL)
	rel := filepath.Join(ScreenshotsDir, name)
	if err := os.WriteFile(filepath.Join(w.dir, rel), data, 0o640); err != nil { //nolint:gosec // Path is under the configured output dir
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return rel, nil
}

// SaveScreenshotBase64 decodes a base64 payload and saves it. Renderers
// that hand screenshots across a JSON boundary deliver them this way.
func (w *Writer) SaveScreenshotBase64(pageURL, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode screenshot: %w", err)
	}
	return w.SaveScreenshot(pageURL, data)
}

// ScreenshotFilename maps a page URL to its screenshot filename. The
// mapping uses only the URL path: slashes become underscores, diacritics
// are folded, and anything outside a conservative character set becomes an
// underscore. An empty path (the site root) maps to "main_page.png".
func ScreenshotFilename(pageURL string) string {
	path := ""
	if u, err := url.Parse(pageURL); err == nil {
		path = u.Path
	}

	slug := strings.Trim(path, "/")
	slug = strings.ReplaceAll(slug, "/", "_")
	if folded, _, err := transform.String(foldDiacritics, slug); err == nil {
		slug = folded
	}
	slug = sanitizeSlug(slug)
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	if slug == "" {
		slug = "main_page"
	}
	return slug + ".png"
}

// sanitizeSlug replaces characters that are awkward in filenames.
func sanitizeSlug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
