package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/leapyear-service/internal/adapters/http"
	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/leapyear-service/internal/app"
	"github.com/jsamuelsen11/leapyear-service/internal/domain"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/health"
	"github.com/jsamuelsen11/leapyear-service/internal/ports"
)

type failingCheck struct{}

func (failingCheck) Name() string                        { return "disk" }
func (failingCheck) HealthCheck(_ context.Context) error { return errors.New("disk full") }

func newAPI(t *testing.T, checkers ...ports.HealthChecker) string {
	t.Helper()

	svc := app.NewLeapYearService(config.LeapConfig{MaxRangeSpan: 20, MaxBatchSize: 10}, nil, nil)
	registry := health.New()
	registry.Register(health.CalendarCheck{})
	for _, c := range checkers {
		registry.Register(c)
	}
	ts := httptest.NewServer(adapthttp.NewRouter(handlers.NewLeapYearHandler(svc), handlers.NewHealthHandler(registry)))
	t.Cleanup(ts.Close)
	return ts.URL
}

// run executes leapcheck with args and a single-attempt client.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error = %v", err)
	}
	cfg.Client.Retry.MaxAttempts = 1

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(cfg)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestYear_Text(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--base-url", newAPI(t), "year", "1901", "1904", "2000", "1900", "2024")
	if err != nil {
		t.Fatalf("year error = %v", err)
	}

	want := "1901\tcommon\n1904\tleap\n2000\tleap\n1900\tcommon\n2024\tleap\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestYear_NegativeAfterSeparator(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--base-url", newAPI(t), "year", "--workers", "1", "--", "-400", "-1")
	if err != nil {
		t.Fatalf("year error = %v", err)
	}
	if out != "-400\tleap\n-1\tcommon\n" {
		t.Errorf("output = %q", out)
	}
}

func TestYear_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--base-url", newAPI(t), "-o", "json", "year", "2024", "1900")
	if err != nil {
		t.Fatalf("year error = %v", err)
	}

	var got dto.YearListResponse
	if err := dto.JSON.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Count != 2 || !got.Years[0].Leap || got.Years[1].Leap {
		t.Errorf("output = %+v, want [2024 leap, 1900 common]", got)
	}
}

func TestYear_InvalidArgument(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--base-url", newAPI(t), "year", "2024", "twenty")
	if err == nil {
		t.Fatal("year with a non-integer argument should fail")
	}
}

func TestYear_PartialFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/1900") {
			dto.WriteProblem(w, r, http.StatusInternalServerError, "boom")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"year":2024,"leap":true}`))
	}))
	t.Cleanup(ts.Close)

	out, stderr, err := run(t, "--base-url", ts.URL, "year", "2024", "1900")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("year error = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(err.Error(), "year 1900") {
		t.Errorf("error = %q, want it to name the failed year", err)
	}
	if out != "2024\tleap\n" {
		t.Errorf("output = %q, want only the successful verdict", out)
	}
	if !strings.Contains(stderr, "lookup failed") {
		t.Errorf("stderr = %q, want the failure logged", stderr)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--base-url", newAPI(t), "range", "1899", "1901")
	if err != nil {
		t.Fatalf("range error = %v", err)
	}
	if out != "1899\tcommon\n1900\tcommon\n1901\tcommon\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRange_OverLimit(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--base-url", newAPI(t), "range", "1", "1000")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("range error = %v, want *domain.ValidationError", err)
	}
}

func TestRange_WrongArity(t *testing.T) {
	t.Parallel()

	if _, _, err := run(t, "--base-url", newAPI(t), "range", "1"); err == nil {
		t.Fatal("range with one argument should fail")
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "text",
			format: OutputText,
			check: func(t *testing.T, out string) {
				t.Helper()
				if out != "25 leap years in 1901..2000\n" {
					t.Errorf("output = %q", out)
				}
			},
		},
		{
			name:   "json",
			format: OutputJSON,
			check: func(t *testing.T, out string) {
				t.Helper()
				var got dto.CountResponse
				if err := dto.JSON.Unmarshal([]byte(out), &got); err != nil {
					t.Fatalf("output is not JSON: %v", err)
				}
				if got != (dto.CountResponse{From: 1901, To: 2000, LeapYears: 25}) {
					t.Errorf("output = %+v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := run(t, "--base-url", newAPI(t), "--output", tt.format, "count", "1901", "2000")
			if err != nil {
				t.Fatalf("count error = %v", err)
			}
			tt.check(t, out)
		})
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--base-url", newAPI(t), "ready")
	if err != nil {
		t.Fatalf("ready error = %v", err)
	}
	if out != "ready\n  calendar: ok\n" {
		t.Errorf("output = %q", out)
	}
}

func TestReady_NotReady(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--base-url", newAPI(t, failingCheck{}), "ready")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("ready error = %v, want ErrUnavailable", err)
	}
	want := "not_ready\n  calendar: ok\n  disk: disk full\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--base-url", newAPI(t), "--output", "yaml", "ready")
	if err == nil || !strings.Contains(err.Error(), "unsupported output") {
		t.Fatalf("error = %v, want unsupported output", err)
	}
}

func TestRoot_RejectsNonPositiveTimeout(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--timeout", "0s", "ready")
	if err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("error = %v, want timeout error", err)
	}
}

func TestRoot_DefaultsComeFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error = %v", err)
	}
	cmd := NewRootCmd(cfg)

	if got := cmd.PersistentFlags().Lookup("base-url").DefValue; got != cfg.Client.BaseURL {
		t.Errorf("--base-url default = %q, want %q", got, cfg.Client.BaseURL)
	}
	if got := cmd.PersistentFlags().Lookup("timeout").DefValue; got != cfg.Client.Timeout.String() {
		t.Errorf("--timeout default = %q, want %q", got, cfg.Client.Timeout)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("Client.Timeout = %s, want 30s", cfg.Client.Timeout)
	}
}
