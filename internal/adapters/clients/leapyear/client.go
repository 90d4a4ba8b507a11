// Package leapyear is the typed client for the leap-year HTTP API. It turns
// the API's JSON and problem+json responses back into calendar values and
// domain errors.
package leapyear

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/domain"
	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
	"github.com/jsamuelsen11/leapyear-service/internal/ports"
)

// ServiceName identifies the API in traces, metrics and health results.
const ServiceName = "leapyear-api"

const yearsPath = "/api/v1/years"

var _ ports.HealthChecker = (*Client)(nil)

// Client calls the leap-year API.
type Client struct {
	http *httpclient.Client
	req  *requester
}

// NewClient wraps an instrumented HTTP client. A nil logger discards output.
func NewClient(hc *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		http: hc,
		req:  &requester{http: hc, logger: logger},
	}
}

// IsLeapYear asks the API about a single year.
func (c *Client) IsLeapYear(ctx context.Context, year int64) (calendar.Verdict, error) {
	var resp dto.YearResponse
	path := yearsPath + "/" + strconv.FormatInt(year, 10)
	if _, err := c.req.do(ctx, http.MethodGet, path, []int{http.StatusOK}, nil, &resp); err != nil {
		return calendar.Verdict{}, err
	}
	return calendar.Verdict{Year: resp.Year, Leap: resp.Leap}, nil
}

// CheckRange returns the verdict for every year in r, ascending.
func (c *Client) CheckRange(ctx context.Context, r calendar.Range) ([]calendar.Verdict, error) {
	var resp dto.YearListResponse
	if _, err := c.req.do(ctx, http.MethodGet, yearsPath+"?"+rangeQuery(r), []int{http.StatusOK}, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToVerdicts(), nil
}

// CheckBatch returns one verdict per year, in input order.
func (c *Client) CheckBatch(ctx context.Context, years []int64) ([]calendar.Verdict, error) {
	var resp dto.YearListResponse
	body := dto.BatchRequest{Years: years}
	if _, err := c.req.do(ctx, http.MethodPost, yearsPath+"/batch", []int{http.StatusOK}, body, &resp); err != nil {
		return nil, err
	}
	return resp.ToVerdicts(), nil
}

// Count returns the number of leap years in r.
func (c *Client) Count(ctx context.Context, r calendar.Range) (int64, error) {
	var resp dto.CountResponse
	if _, err := c.req.do(ctx, http.MethodGet, yearsPath+"/count?"+rangeQuery(r), []int{http.StatusOK}, nil, &resp); err != nil {
		return 0, err
	}
	return resp.LeapYears, nil
}

// Ready fetches the readiness probe. A not-ready service yields its report
// together with an error wrapping domain.ErrUnavailable.
func (c *Client) Ready(ctx context.Context) (dto.HealthResponse, error) {
	var resp dto.HealthResponse
	accept := []int{http.StatusOK, http.StatusServiceUnavailable}
	status, err := c.req.do(ctx, http.MethodGet, "/health/ready", accept, nil, &resp)
	if err != nil {
		return resp, err
	}
	if status != http.StatusOK {
		return resp, fmt.Errorf("%s is %s: %w", ServiceName, resp.Status, domain.ErrUnavailable)
	}
	return resp, nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck implements ports.HealthChecker. An open circuit breaker fails
// fast without a network call; otherwise the readiness probe decides.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.http.HealthCheck(ctx); err != nil {
		return err
	}
	_, err := c.Ready(ctx)
	return err
}

// IsUnavailable reports whether err means the API could not answer, as
// opposed to rejecting the request.
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrUnavailable)
}

func rangeQuery(r calendar.Range) string {
	return url.Values{
		"from": {strconv.FormatInt(r.From, 10)},
		"to":   {strconv.FormatInt(r.To, 10)},
	}.Encode()
}
