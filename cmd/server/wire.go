package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/leapyear-service/internal/adapters/http"
	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/leapyear-service/internal/app"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/health"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/leapyear-service/internal/ports"
)

// newInjector registers every component of the server. Nothing is built
// until resolveServer pulls the graph.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, metrics)

	do.Provide(i, provideLeapYearService)
	do.Provide(i, provideHealthRegistry)
	do.Provide(i, provideLeapYearHandler)
	do.Provide(i, provideHealthHandler)
	do.Provide(i, provideRouter)
	do.Provide(i, provideServer)

	return i
}

func resolveServer(i do.Injector) (*adapthttp.Server, error) {
	s, err := do.Invoke[*adapthttp.Server](i)
	if err != nil {
		return nil, fmt.Errorf("resolving server: %w", err)
	}
	return s, nil
}

func provideLeapYearService(i do.Injector) (ports.LeapYearService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return app.NewLeapYearService(cfg.Leap,
		do.MustInvoke[*telemetry.Metrics](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

func provideHealthRegistry(do.Injector) (ports.HealthRegistry, error) {
	r := health.New()
	r.Register(health.CalendarCheck{})
	return r, nil
}

func provideLeapYearHandler(i do.Injector) (*handlers.LeapYearHandler, error) {
	return handlers.NewLeapYearHandler(do.MustInvoke[ports.LeapYearService](i)), nil
}

func provideHealthHandler(i do.Injector) (*handlers.HealthHandler, error) {
	return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
}

// provideRouter fixes the middleware order: recovery outermost so it sees
// every panic, ids before anything that logs, timeout innermost.
func provideRouter(i do.Injector) (nethttp.Handler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)

	return adapthttp.NewRouter(
		do.MustInvoke[*handlers.LeapYearHandler](i),
		do.MustInvoke[*handlers.HealthHandler](i),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.WriteTimeout),
	), nil
}

func provideServer(i do.Injector) (*adapthttp.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
}
