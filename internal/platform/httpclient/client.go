// Package httpclient is the outbound HTTP stack used to reach a leap year
// service. Every call passes through, in order:
//
//	circuit breaker → rate limiter → request metadata → client span → retry → transport
//
// Typical use:
//
//	c := httpclient.New(&cfg.Client, "leapyear-api", metrics, logger)
//	req, _ := c.NewRequest(ctx, http.MethodGet, "/api/v1/years/2024", nil)
//	resp, err := c.Do(ctx, req)
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client sends requests to one downstream service rooted at a base URL.
type Client struct {
	transport *http.Client
	baseURL   string
	peer      string
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	limiter   *rate.Limiter // nil means unlimited
	retry     policy
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// New builds a Client for the service named peer. A nil metrics skips
// recording and a nil logger discards output.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Client{
		transport: &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		peer:      peer,
		retry:     newPolicy(cfg.Retry),
		metrics:   metrics,
		logger:    logger,
	}
	c.breaker = newBreaker(peer, cfg.CircuitBreaker, logger)

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// NewRequest builds a request for path under the base URL, asking for JSON.
// A non-nil body is JSON encoded.
func (c *Client) NewRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Do sends req. The response body, when a response is returned, is open and
// must be closed by the caller.
//
// If every attempt ended in a retryable status, Do returns the last response
// together with a non-nil error so the caller can still read the problem
// body. A nil response means no attempt produced one.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}
		setMetadata(ctx, req.Header)

		ctx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(ctx, req.WithContext(ctx))
		endSpan(span, r, err)
		return r, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the base URL without its trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream service in logs, spans and health reports.
func (c *Client) Name() string { return c.peer }
