package leapyear

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MiB

// locationPrefixes are stripped from problem error locations so that callers
// see the bare parameter names ("from", "years").
var locationPrefixes = []string{"query.", "body.", "path."}

// TranslateHTTPError maps an error response from the leap-year API to a
// domain error. RFC 9457 bodies contribute their detail and, for 400 and 422,
// their per-field errors as a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblem(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblem reads an RFC 9457 body from the response. It returns the zero
// value when the body is absent, not problem+json, or malformed.
func parseProblem(resp *http.Response) dto.ErrorResponse {
	if resp.Body == nil {
		return dto.ErrorResponse{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), dto.ContentTypeProblem) {
		return dto.ErrorResponse{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return dto.ErrorResponse{}
	}

	var pd dto.ErrorResponse
	if err := dto.JSON.Unmarshal(body, &pd); err != nil {
		return dto.ErrorResponse{}
	}
	return pd
}

func toValidationError(details []dto.ErrorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := d.Location
		for _, prefix := range locationPrefixes {
			field = strings.TrimPrefix(field, prefix)
		}
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
