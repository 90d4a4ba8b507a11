package ports

import "context"

// HealthChecker is a component that can say whether it is fit to serve.
// The server registers the calendar self-test; the leap year API client
// satisfies it too.
type HealthChecker interface {
	// Name keys the component in readiness reports.
	Name() string

	// HealthCheck returns nil when healthy and must honour ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers on behalf of the readiness
// endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
