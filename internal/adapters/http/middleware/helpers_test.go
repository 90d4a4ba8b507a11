package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// yearRouter mounts h at /api/v1/years/{year} behind mw, the way the server
// does, so that route patterns are resolved.
func yearRouter(h http.HandlerFunc, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw...)
	r.Get("/api/v1/years/{year}", h)
	return r
}
