// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Leap      LeapConfig      `koanf:"leap"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// LeapConfig bounds the size of multi-year queries. Count queries are O(1)
// and are not bounded.
type LeapConfig struct {
	MaxRangeSpan int64 `koanf:"max_range_span" validate:"min=1"`
	MaxBatchSize int   `koanf:"max_batch_size" validate:"min=1"`
}

// ClientConfig holds settings for HTTP clients of the leap-year API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,url"`
	Timeout        time.Duration        `koanf:"timeout" validate:"gt=0"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts" validate:"min=1"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"gte=0"`
	MaxInterval     time.Duration `koanf:"max_interval" validate:"gtefield=InitialInterval"`
	Multiplier      float64       `koanf:"multiplier" validate:"gt=0"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout" validate:"gte=0"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"min=0"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables the limiter; otherwise BurstSize is
// required.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	BurstSize         int     `koanf:"burst_size" validate:"gte=0,required_unless=RequestsPerSecond 0"`
}

// TelemetryConfig holds OpenTelemetry settings. Exporter is checked even
// when telemetry is off so that a typo surfaces before it is switched on.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter" validate:"oneof=stdout otlp"`
	Endpoint    string `koanf:"endpoint" validate:"required_if=Enabled true Exporter otlp"`
	ServiceName string `koanf:"service_name" validate:"required_if=Enabled true"`
}
