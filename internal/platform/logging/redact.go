package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
	"github.com/samber/lo"
)

// sensitiveHeaders carry credentials. Their values never reach log output,
// whether logged as request headers or as stray attributes.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
}

// IsSensitiveHeader reports whether the named HTTP header carries credentials.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// At least 10 characters per segment so version strings do not match.
	jwtPattern    = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// redactor builds the masq ReplaceAttr hook shared by every handler New
// creates. Fields are matched by name or prefix; free-form values by regex.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := lo.Map(sensitiveHeaders, func(name string, _ int) masq.Option {
		return masq.WithFieldName(name)
	})
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyPattern),
	)
	return masq.New(opts...)
}
