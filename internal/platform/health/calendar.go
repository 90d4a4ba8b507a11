package health

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
	"github.com/jsamuelsen11/leapyear-service/internal/ports"
)

var _ ports.HealthChecker = CalendarCheck{}

// referenceYears are the verdicts the rule must reproduce.
var referenceYears = []calendar.Verdict{
	{Year: 1901, Leap: false},
	{Year: 1904, Leap: true},
	{Year: 2000, Leap: true},
	{Year: 1900, Leap: false},
	{Year: 2024, Leap: true},
}

// CalendarCheck is an in-process checker that replays the reference years
// through calendar.IsLeapYear. It is what the server registers for readiness.
type CalendarCheck struct{}

// Name implements ports.HealthChecker.
func (CalendarCheck) Name() string { return "calendar" }

// HealthCheck implements ports.HealthChecker.
func (CalendarCheck) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, want := range referenceYears {
		if got := calendar.IsLeapYear(want.Year); got != want.Leap {
			return fmt.Errorf("year %d: leap = %v, want %v", want.Year, got, want.Leap)
		}
	}
	return nil
}
