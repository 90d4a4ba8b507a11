package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
)

// jitter is the maximum deviation applied to a backoff delay, as a fraction
// of that delay.
const jitter = 0.25

// policy is the retry schedule: up to attempts tries, waiting
// initial*multiplier^(n-1) before retry n, capped at ceiling, each wait
// jittered by up to ±25%.
type policy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
	rand       func() float64 // in [0, 1)
}

func newPolicy(cfg config.RetryConfig) policy {
	return policy{
		attempts:   cfg.MaxAttempts,
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
		rand:       rand.Float64, //nolint:gosec // jitter needs no cryptographic source
	}
}

// delay returns the wait before retry n (n >= 1). A Retry-After hint from
// the peer can lengthen the wait up to the ceiling but never shorten it.
func (p policy) delay(n int, hint time.Duration) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*p.rand() - 1)
	return max(time.Duration(max(d, 0)), min(hint, p.ceiling))
}

// send runs the attempt loop. The body is buffered once so each attempt can
// replay it. On exhaustion with a retryable status the final response is
// returned alongside the error with its body unread.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: retry attempts must be >= 1, got %d", c.retry.attempts)
	}

	replay, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for n := range c.retry.attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, hint, lastErr); err != nil {
				return nil, err
			}
		}
		replay(req)

		resp, err := c.transport.Do(req)
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			lastErr, hint = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s answered %d", c.peer, resp.StatusCode)
		hint = retryAfter(resp, time.Now())
		if n == c.retry.attempts-1 {
			return resp, lastErr
		}
		discard(resp)
	}
	return nil, lastErr
}

// pause logs the upcoming retry and sleeps for its delay unless ctx ends
// first.
func (c *Client) pause(ctx context.Context, req *http.Request, n int, hint time.Duration, cause error) error {
	d := c.retry.delay(n, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying request",
		slog.String("peer_service", c.peer),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// bufferBody drains the request body and returns a function that rewinds
// it before each attempt. Bodiless requests get a no-op.
func bufferBody(req *http.Request) (func(*http.Request), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func(*http.Request) {}, nil
	}

	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	return func(r *http.Request) {
		r.Body = io.NopCloser(bytes.NewReader(b))
		r.ContentLength = int64(len(b))
	}, nil
}

// discard consumes and closes a response body so the connection can be
// reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter reads Retry-After from a 429 or 503, in seconds or HTTP-date
// form. Missing, malformed and past values yield zero.
func retryAfter(resp *http.Response, now time.Time) time.Duration {
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return 0
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(0, time.Duration(secs)*time.Second)
	}
	if t, err := http.ParseTime(v); err == nil {
		return max(0, t.Sub(now))
	}
	return 0
}

// retryable reports whether a transport error is worth another attempt.
// Only the caller's own cancellation or deadline is final.
func retryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus is true for 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
