package httpclient

import (
	"context"
	"net/http"
)

type metadataKey int

const (
	requestIDKey metadataKey = iota
	correlationIDKey
)

// metadataHeaders maps each context key to the header it is sent as.
var metadataHeaders = [...]struct {
	key    metadataKey
	header string
}{
	{requestIDKey, "X-Request-ID"},
	{correlationIDKey, "X-Correlation-ID"},
}

// WithRequestID attaches id to ctx; requests sent with ctx carry it as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID attaches id to ctx; requests sent with ctx carry it as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func setMetadata(ctx context.Context, h http.Header) {
	for _, m := range metadataHeaders {
		if v, _ := ctx.Value(m.key).(string); v != "" {
			h.Set(m.header, v)
		}
	}
}
