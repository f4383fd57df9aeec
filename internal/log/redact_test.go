package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want bool // true when the value must be masked
	}{
		{"cookie key", "cookie", true},
		{"cookies key", "cookies", true},
		{"credential key", "credential_file_content", true},
		{"password key", "db_password", true},
		{"token key", "access_token", true},
		{"session key", "session_id", true},
		{"mixed case key", "Cookie", true},
		{"plain url key", "url", false},
		{"plain error key", "error", false},
		{"count key", "processed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, "super-secret-value")

			out := buf.String()
			masked := strings.Contains(out, MaskValue)
			leaked := strings.Contains(out, "super-secret-value")
			if tt.want && (!masked || leaked) {
				t.Errorf("key %q should be masked, output: %s", tt.key, out)
			}
			if !tt.want && (masked || !leaked) {
				t.Errorf("key %q should not be masked, output: %s", tt.key, out)
			}
		})
	}
}

func TestRedactHandlerMasksGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", slog.Group("request",
		slog.String("url", "https://docs.example.org"),
		slog.String("cookie", "session=abc"),
	))

	out := buf.String()
	if strings.Contains(out, "session=abc") {
		t.Errorf("grouped cookie leaked: %s", out)
	}
	if !strings.Contains(out, "https://docs.example.org") {
		t.Errorf("grouped url should survive: %s", out)
	}
}

func TestRedactHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
	logger = logger.With("token", "abc123")
	logger.Info("test")

	if strings.Contains(buf.String(), "abc123") {
		t.Errorf("token attached via With leaked: %s", buf.String())
	}
}

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	t.Run("quiet by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Info("should be suppressed")
		logger.Warn("should appear")

		out := buf.String()
		if strings.Contains(out, "should be suppressed") {
			t.Errorf("info leaked at warn level: %s", out)
		}
		if !strings.Contains(out, "should appear") {
			t.Errorf("warn missing: %s", out)
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("debug line")
		if !strings.Contains(buf.String(), "debug line") {
			t.Errorf("debug missing in verbose mode: %s", buf.String())
		}
	})
}
