package leapyear

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/httpclient"
)

// requester owns the request lifecycle for Client: building, execution via
// httpclient.Client, status checking, error translation, decoding and
// closing the body.
type requester struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// do sends the request and decodes the body into respBody when the status
// is one of accept. Any other status is translated with TranslateHTTPError.
// It returns the final status code, or zero when no response arrived.
func (r *requester) do(ctx context.Context, method, path string, accept []int, reqBody, respBody any) (int, error) {
	req, err := r.http.NewRequest(ctx, method, path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}

	// httpclient.Do returns both resp and err when retries on a retryable
	// status are exhausted; the response still decides the outcome.
	resp, err := r.http.Do(ctx, req)
	if resp == nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer r.closeBody(ctx, resp)

	if !slices.Contains(accept, resp.StatusCode) {
		r.logger.DebugContext(ctx, "unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return resp.StatusCode, TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := dto.JSON.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
