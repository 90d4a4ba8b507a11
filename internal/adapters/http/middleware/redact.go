package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
)

// redactedValue replaces the value of any sensitive header in log output.
const redactedValue = "[REDACTED]"

// RedactHeaders converts request headers into slog attributes sorted by
// header name. Values of credential headers (see logging.IsSensitiveHeader)
// become "[REDACTED]"; multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := redactedValue
		if !logging.IsSensitiveHeader(key) {
			value = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
