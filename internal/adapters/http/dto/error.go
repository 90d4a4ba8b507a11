package dto

import (
	"cmp"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/leapyear-service/internal/domain"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
)

// ContentTypeProblem is the media type of RFC 9457 responses.
const ContentTypeProblem = "application/problem+json"

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected input. Location is prefixed with where the
// input came from: "path.", "query." or "body.".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := newProblem(r, statusFor(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with the status code derived from its sentinel.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes an RFC 9457 response with an explicit status code, for
// conditions that have no domain error (timeouts, unknown routes).
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)

	if err := JSON.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// statusFor maps the domain sentinel wrapped in err to an HTTP status.
// Anything unrecognised is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fieldDetails lists validation fields ordered by location so responses are
// stable.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := lo.MapToSlice(fields, func(loc, msg string) ErrorDetail {
		return ErrorDetail{Location: loc, Message: msg}
	})
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
