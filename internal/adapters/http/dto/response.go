// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
)

// JSON is the codec shared by the HTTP adapter and the API client. It is
// drop-in compatible with encoding/json, including struct tags and map key
// ordering.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// YearResponse represents a single verdict in HTTP responses.
type YearResponse struct {
	Year int64 `json:"year"`
	Leap bool  `json:"leap"`
}

// YearListResponse represents the verdicts of a range or batch query.
type YearListResponse struct {
	Years []YearResponse `json:"years"`
	Count int            `json:"count"`
}

// CountResponse represents the answer of a count query.
type CountResponse struct {
	From      int64 `json:"from"`
	To        int64 `json:"to"`
	LeapYears int64 `json:"leap_years"`
}

// ToYearResponse converts a domain verdict to an HTTP response DTO.
func ToYearResponse(v calendar.Verdict) YearResponse {
	return YearResponse{Year: v.Year, Leap: v.Leap}
}

// ToYearListResponse converts verdicts to an HTTP list response DTO,
// preserving their order.
func ToYearListResponse(verdicts []calendar.Verdict) YearListResponse {
	return YearListResponse{
		Years: lo.Map(verdicts, func(v calendar.Verdict, _ int) YearResponse {
			return ToYearResponse(v)
		}),
		Count: len(verdicts),
	}
}

// ToVerdicts converts a list response back into domain verdicts.
func (r YearListResponse) ToVerdicts() []calendar.Verdict {
	return lo.Map(r.Years, func(y YearResponse, _ int) calendar.Verdict {
		return calendar.Verdict{Year: y.Year, Leap: y.Leap}
	})
}

// Health probe statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks is
// only present on readiness and maps each checker to "ok" or its error.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
