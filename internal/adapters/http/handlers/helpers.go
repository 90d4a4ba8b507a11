// Package handlers implements the inbound HTTP handlers. Handlers parse and
// validate requests into domain values, call a port, and render DTOs; they
// hold no business rules.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/domain"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MiB).
const maxJSONBodyBytes = 1 << 20

// parseYearParam extracts the year path parameter from the chi URL params.
func parseYearParam(r *http.Request, param string) (int64, error) {
	year, err := dto.ParseYear(chi.URLParam(r, param))
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a valid integer"},
		}
	}
	return year, nil
}

// locate prefixes the field names of a service validation error with the
// request location they came from. Other errors pass through unchanged.
func locate(err error, prefix string) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	return &domain.ValidationError{Fields: lo.MapKeys(verr.Fields, func(_, field string) string {
		return prefix + field
	})}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := dto.JSON.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes. On failure, it writes a 400 error response and
// returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := dto.JSON.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "must not exceed 1 MiB"
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": msg},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// parseRangeQuery reads and validates the from/to query parameters.
// On failure it writes an error response and returns false.
func parseRangeQuery(w http.ResponseWriter, r *http.Request) (*dto.RangeQuery, bool) {
	q := dto.ParseRangeQuery(r.URL.Query())
	if err := q.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, false
	}
	return q, true
}
