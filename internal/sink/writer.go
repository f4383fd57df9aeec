package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"docscrawl/internal/model"
)

// Output file names within the output directory.
const (
	PagesFile        = "pages.jsonl"
	ImagesFile       = "images.jsonl"
	YoutubeLinksFile = "youtube_links.jsonl"
	ErrorsFile       = "errors.jsonl"

	// ScreenshotsDir holds the per-page PNG files.
	ScreenshotsDir = "screenshots"
)

// Writer persists crawl records as JSONL, one file per record kind.
// It is not safe for concurrent use; the crawl engine is the single writer.
type Writer struct {
	dir string

	pages   *os.File
	images  *os.File
	youtube *os.File
	errs    *os.File

	screenshots bool
}

// New opens the output files under dir, creating the directory tree as
// needed. Files are opened in append mode so a new run over an existing
// directory extends the record rather than truncating it.
func New(dir string, withScreenshots bool) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if withScreenshots {
		if err := os.MkdirAll(filepath.Join(dir, ScreenshotsDir), 0o750); err != nil {
			return nil, fmt.Errorf("create screenshots dir: %w", err)
		}
	}

	w := &Writer{dir: dir, screenshots: withScreenshots}

	var err error
	if w.pages, err = openAppend(dir, PagesFile); err != nil {
		return nil, err
	}
	if w.images, err = openAppend(dir, ImagesFile); err != nil {
		w.Close()
		return nil, err
	}
	if w.youtube, err = openAppend(dir, YoutubeLinksFile); err != nil {
		w.Close()
		return nil, err
	}
	if w.errs, err = openAppend(dir, ErrorsFile); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// AppendPage writes one page record to pages.jsonl.
func (w *Writer) AppendPage(rec model.PageRecord) error {
	return appendJSONL(w.pages, rec)
}

// AppendImage writes one image record to images.jsonl.
func (w *Writer) AppendImage(rec model.ImageRecord) error {
	return appendJSONL(w.images, rec)
}

// AppendYoutubeLink writes one video link record to youtube_links.jsonl.
func (w *Writer) AppendYoutubeLink(rec model.YoutubeLinkRecord) error {
	return appendJSONL(w.youtube, rec)
}

// AppendError writes one error record to errors.jsonl.
func (w *Writer) AppendError(rec model.ErrorRecord) error {
	return appendJSONL(w.errs, rec)
}

// Close closes all output files. Close errors are joined so a failed flush
// on any file is visible.
func (w *Writer) Close() error {
	var errs []error
	for _, f := range []*os.File{w.pages, w.images, w.youtube, w.errs} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openAppend opens one output file in append mode.
func openAppend(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640) //nolint:gosec // Path is under the configured output dir
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// appendJSONL encodes one record as a single line of JSON. HTML escaping is
// disabled so URLs with &, <, > and non-ASCII documentation text survive
// byte for byte.
func appendJSONL(f *os.File, rec any) error {
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}
