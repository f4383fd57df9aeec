package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Cookie is one session cookie from a credential file. The field names and
// JSON tags follow the storage-state export format that browser automation
// tools produce, so a file saved from a logged-in session works unmodified.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain"`
	Path   string `json:"path"`
	// Expires is seconds since the Unix epoch. Exports use -1 or omit it
	// for session cookies.
	Expires  float64 `json:"expires,omitempty"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	SameSite string  `json:"sameSite,omitempty"`
}

// storageState is the object shape of a credential file: a full browser
// storage-state export whose cookies live under a "cookies" key.
type storageState struct {
	Cookies []Cookie `json:"cookies"`
}

// LoadCredentialFile reads session cookies from a JSON file. Two shapes are
// accepted: a bare array of cookies, or a storage-state object with a
// "cookies" array. Any other shape, and any read failure, is fatal;
// crawling a login-walled site with no cookies would silently produce a
// crawl of login redirects.
func LoadCredentialFile(path string) ([]Cookie, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided credential path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCredentialNotFound, path)
	}

	// Try the bare array shape first; it is what a minimal hand-written
	// cookie file looks like.
	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err == nil {
		return cookies, nil
	}

	var state storageState
	if err := json.Unmarshal(data, &state); err == nil && state.Cookies != nil {
		return state.Cookies, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrCredentialFormat, path)
}
