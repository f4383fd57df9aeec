package sink

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestScreenshotFilename covers the URL-path-to-filename mapping: slash
// replacement, diacritic folding, sanitization, truncation, and the root
// fallback.
func TestScreenshotFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "simple path",
			url:  "https://docs.example.org/en/Main_page",
			want: "en_Main_page.png",
		},
		{
			name: "nested path joins with underscores",
			url:  "https://docs.example.org/en/admin/Settings",
			want: "en_admin_Settings.png",
		},
		{
			name: "site root maps to main_page",
			url:  "https://docs.example.org/",
			want: "main_page.png",
		},
		{
			name: "empty path maps to main_page",
			url:  "https://docs.example.org",
			want: "main_page.png",
		},
		{
			name: "diacritics folded",
			url:  "https://docs.example.org/fr/Généralités",
			want: "fr_Generalites.png",
		},
		{
			name: "query and fragment ignored",
			url:  "https://docs.example.org/en/FAQ?x=1#top",
			want: "en_FAQ.png",
		},
		{
			name: "awkward characters replaced",
			url:  "https://docs.example.org/en/What's%20new",
			want: "en_What_s_new.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ScreenshotFilename(tt.url); got != tt.want {
				t.Errorf("ScreenshotFilename(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestScreenshotFilenameTruncation(t *testing.T) {
	t.Parallel()

	long := "https://docs.example.org/" + strings.Repeat("segment/", 40) + "leaf"
	got := ScreenshotFilename(long)
	if len(got) != maxSlugLen+len(".png") {
		t.Errorf("len = %d, want %d", len(got), maxSlugLen+len(".png"))
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("missing .png suffix: %q", got)
	}
}

func TestScreenshotFilenameDeterministic(t *testing.T) {
	t.Parallel()

	url := "https://docs.example.org/en/Généralités"
	if ScreenshotFilename(url) != ScreenshotFilename(url) {
		t.Error("filename mapping must be deterministic")
	}
}

func TestSaveScreenshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	data := []byte{0x89, 'P', 'N', 'G'}
	rel, err := w.SaveScreenshot("https://docs.example.org/en/Main_page", data)
	if err != nil {
		t.Fatalf("SaveScreenshot() error = %v", err)
	}
	if rel != filepath.Join(ScreenshotsDir, "en_Main_page.png") {
		t.Errorf("rel = %q", rel)
	}

	written, err := os.ReadFile(filepath.Join(dir, rel)) //nolint:gosec // Test-owned temp path
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, data) {
		t.Error("screenshot bytes do not match")
	}

	// Saving again overwrites rather than accumulating.
	newData := []byte{1, 2, 3}
	if _, err := w.SaveScreenshot("https://docs.example.org/en/Main_page", newData); err != nil {
		t.Fatal(err)
	}
	written, err = os.ReadFile(filepath.Join(dir, rel)) //nolint:gosec // Test-owned temp path
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, newData) {
		t.Error("second save should overwrite the first")
	}
}

func TestSaveScreenshotBase64(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	data := []byte("png-bytes")
	rel, err := w.SaveScreenshotBase64("https://docs.example.org/en/FAQ", base64.StdEncoding.EncodeToString(data))
	if err != nil {
		t.Fatalf("SaveScreenshotBase64() error = %v", err)
	}
	written, err := os.ReadFile(filepath.Join(dir, rel)) //nolint:gosec // Test-owned temp path
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, data) {
		t.Error("decoded bytes do not match")
	}

	if _, err := w.SaveScreenshotBase64("https://x/y", "!!not base64!!"); err == nil {
		t.Error("expected decode error, got nil")
	}
}
