// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/leapyear-service/internal/domain"
	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/leapyear-service/internal/ports"
)

// Compile-time check that LeapYearService implements ports.LeapYearService.
var _ ports.LeapYearService = (*LeapYearService)(nil)

// LeapYearService implements ports.LeapYearService on top of
// calendar.IsLeapYear. It enforces the configured query limits, logs each
// use case and records the year-check counter. It holds no mutable state.
type LeapYearService struct {
	limits  config.LeapConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewLeapYearService creates a LeapYearService. metrics may be nil when
// telemetry is disabled. A nil logger discards output.
func NewLeapYearService(limits config.LeapConfig, metrics *telemetry.Metrics, logger *slog.Logger) *LeapYearService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LeapYearService{
		limits:  limits,
		metrics: metrics,
		logger:  logger,
	}
}

// Check returns the verdict for a single year.
func (s *LeapYearService) Check(ctx context.Context, year int64) calendar.Verdict {
	v := calendar.Check(year)

	s.logger.InfoContext(ctx, "checked year",
		slog.Int64("year", year),
		slog.Bool("leap", v.Leap),
	)
	s.record(ctx, "Check", 1, telemetry.AttrResult.String(result(v.Leap)))

	return v
}

// CheckRange returns a verdict for every year in r, ascending.
func (s *LeapYearService) CheckRange(ctx context.Context, r calendar.Range) ([]calendar.Verdict, error) {
	s.logger.InfoContext(ctx, "checking range",
		slog.Int64("from", r.From),
		slog.Int64("to", r.To),
	)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	if span := r.Span(); span > s.limits.MaxRangeSpan {
		s.logger.WarnContext(ctx, "range exceeds limit",
			slog.String("operation", "CheckRange"),
			slog.Int64("span", span),
			slog.Int64("max_range_span", s.limits.MaxRangeSpan),
		)
		return nil, &domain.ValidationError{Fields: map[string]string{
			"to": fmt.Sprintf("range must not span more than %d years", s.limits.MaxRangeSpan),
		}}
	}

	years := lo.RangeFrom(r.From, int(r.Span()))
	verdicts := lo.Map(years, func(year int64, _ int) calendar.Verdict {
		return calendar.Check(year)
	})

	s.record(ctx, "CheckRange", int64(len(verdicts)))
	return verdicts, nil
}

// CheckBatch returns a verdict for each input year, preserving order and
// duplicates.
func (s *LeapYearService) CheckBatch(ctx context.Context, years []int64) ([]calendar.Verdict, error) {
	s.logger.InfoContext(ctx, "checking batch", slog.Int("size", len(years)))

	switch {
	case len(years) == 0:
		return nil, &domain.ValidationError{Fields: map[string]string{
			"years": "must contain at least one year",
		}}
	case len(years) > s.limits.MaxBatchSize:
		s.logger.WarnContext(ctx, "batch exceeds limit",
			slog.String("operation", "CheckBatch"),
			slog.Int("size", len(years)),
			slog.Int("max_batch_size", s.limits.MaxBatchSize),
		)
		return nil, &domain.ValidationError{Fields: map[string]string{
			"years": fmt.Sprintf("must not contain more than %d years", s.limits.MaxBatchSize),
		}}
	}

	verdicts := lo.Map(years, func(year int64, _ int) calendar.Verdict {
		return calendar.Check(year)
	})

	s.record(ctx, "CheckBatch", int64(len(verdicts)))
	return verdicts, nil
}

// Count returns the number of leap years in r.
func (s *LeapYearService) Count(ctx context.Context, r calendar.Range) (int64, error) {
	s.logger.InfoContext(ctx, "counting leap years",
		slog.Int64("from", r.From),
		slog.Int64("to", r.To),
	)

	if err := r.Validate(); err != nil {
		return 0, err
	}

	n := calendar.CountLeapYears(r)
	s.record(ctx, "Count", 1)
	return n, nil
}

// record adds n to the year-check counter when metrics are enabled.
func (s *LeapYearService) record(ctx context.Context, operation string, n int64, extra ...attribute.KeyValue) {
	if s.metrics == nil {
		return
	}
	attrs := append([]attribute.KeyValue{telemetry.AttrOperation.String(operation)}, extra...)
	s.metrics.YearChecksTotal.Add(ctx, n, metric.WithAttributes(attrs...))
}

func result(leap bool) string {
	if leap {
		return "leap"
	}
	return "common"
}
