package ports

import (
	"context"

	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
)

// LeapYearService defines the service port for leap-year queries.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every answer is derived from calendar.IsLeapYear.
type LeapYearService interface {
	// Check returns the verdict for a single year. It never fails.
	Check(ctx context.Context, year int64) calendar.Verdict

	// CheckRange returns one verdict per year in r, in ascending year order.
	// Returns domain.ErrValidation if r is inverted or wider than the
	// configured maximum span.
	CheckRange(ctx context.Context, r calendar.Range) ([]calendar.Verdict, error)

	// CheckBatch returns one verdict per input year, in input order.
	// Returns domain.ErrValidation if years is empty or longer than the
	// configured maximum batch size.
	CheckBatch(ctx context.Context, years []int64) ([]calendar.Verdict, error)

	// Count returns the number of leap years in r. Any span is accepted.
	// Returns domain.ErrValidation if r is inverted.
	Count(ctx context.Context, r calendar.Range) (int64, error)
}
