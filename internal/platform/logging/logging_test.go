package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: logging.FormatJSON, want: []string{`"level":"INFO"`, `"msg":"checked year"`, `"year":2024`}},
		{format: logging.FormatText, want: []string{"level=INFO", `msg="checked year"`, "year=2024"}},
		{format: "TEXT", want: []string{"level=INFO"}},
		{format: "xml", want: []string{`"level":"INFO"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("checked year", slog.Int64("year", 2024))

			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output = %q, want it to contain %q", buf.String(), w)
				}
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		logAt   slog.Level
		written bool
	}{
		{level: "debug", logAt: slog.LevelDebug, written: true},
		{level: "info", logAt: slog.LevelDebug, written: false},
		{level: "info", logAt: slog.LevelInfo, written: true},
		{level: "WARN", logAt: slog.LevelInfo, written: false},
		{level: "error", logAt: slog.LevelWarn, written: false},
		{level: "error", logAt: slog.LevelError, written: true},
		{level: "bogus", logAt: slog.LevelDebug, written: false},
		{level: "bogus", logAt: slog.LevelInfo, written: true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.logAt.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, logging.FormatJSON, &buf).Log(context.Background(), tt.logAt, "msg")

			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v (output %q)", got, tt.written, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	for level, want := range map[string]bool{"debug": true, "info": false} {
		var buf bytes.Buffer
		logging.New(level, logging.FormatJSON, &buf).Error("boom")

		if got := strings.Contains(buf.String(), `"source"`); got != want {
			t.Errorf("level %s: source present = %v, want %v", level, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		"Warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"warn+2": slog.LevelWarn + 2,
		"":       slog.LevelInfo,
		"loud":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDiscard_WritesNothing(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger is enabled at error, want disabled")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext(empty) should return slog.Default()")
	}

	first := logging.Discard()
	second := logging.Discard()
	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext should return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "cookie field", attr: slog.String("cookie", "session=abc123"), secret: "abc123"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "secret prefix", attr: slog.String("secret_key", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer value", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("note", "api_key=abcdef123"), secret: "abcdef123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", logging.FormatJSON, &buf).Info("request", tt.attr)

			if strings.Contains(buf.String(), tt.secret) {
				t.Errorf("output = %q, want %q redacted", buf.String(), tt.secret)
			}
			if !strings.Contains(buf.String(), "[REDACTED]") {
				t.Errorf("output = %q, want [REDACTED] marker", buf.String())
			}
		})
	}
}

func TestNew_KeepsYearsAndPaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", logging.FormatJSON, &buf).Info("request",
		slog.Int64("year", 2024),
		slog.String("path", "/api/v1/years/2024"),
		slog.String("version", "1.2.3"),
	)

	for _, want := range []string{`"year":2024`, "/api/v1/years/2024", "1.2.3"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want it to contain %q", buf.String(), want)
		}
	}
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"Authorization":       true,
		"COOKIE":              true,
		"X-Api-Key":           true,
		"Proxy-Authorization": true,
		"Content-Type":        false,
		"X-Request-Id":        false,
	} {
		if got := logging.IsSensitiveHeader(name); got != want {
			t.Errorf("IsSensitiveHeader(%q) = %v, want %v", name, got, want)
		}
	}
}
