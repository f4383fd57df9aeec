package fetch

import (
	"errors"
	"testing"
)

// Navigation and rendering need a live browser; only the pure result
// plumbing is covered here.
func TestFailureResult(t *testing.T) {
	t.Parallel()

	res := failure("https://docs.example.org/en/Broken", errors.New("net::ERR_NAME_NOT_RESOLVED"))

	if res.Success {
		t.Error("failure result must not be marked successful")
	}
	if res.URL != "https://docs.example.org/en/Broken" {
		t.Errorf("URL = %q", res.URL)
	}
	if res.Error == "" {
		t.Error("failure result must carry the error text")
	}
}

func TestPoolOptions(t *testing.T) {
	t.Parallel()

	p := NewPool(nil, WithScreenshots(true))
	if p.timeout <= 0 {
		t.Error("timeout should default to a positive value")
	}
	if !p.screenshots {
		t.Error("WithScreenshots(true) not applied")
	}
	if p.logger == nil {
		t.Error("logger should default to a usable instance")
	}
}
