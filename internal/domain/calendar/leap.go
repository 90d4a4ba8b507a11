// Package calendar implements the Gregorian leap-year rule and the small value
// types built on it. Everything here is pure and safe for concurrent use.
package calendar

import (
	"math"

	"github.com/jsamuelsen11/leapyear-service/internal/domain"
)

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar. It is total over int64: zero and negative years follow the same
// rule, so year 0 is a leap year and -1 is not.
func IsLeapYear(year int64) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// Verdict is the answer for a single year.
type Verdict struct {
	Year int64
	Leap bool
}

// Check returns the Verdict for year.
func Check(year int64) Verdict {
	return Verdict{Year: year, Leap: IsLeapYear(year)}
}

// Range is an inclusive span of years.
type Range struct {
	From int64
	To   int64
}

// Validate returns a *domain.ValidationError when From is after To.
func (r Range) Validate() error {
	if r.From > r.To {
		return &domain.ValidationError{
			Fields: map[string]string{"from": "must not be greater than to"},
		}
	}
	return nil
}

// Span returns the number of years covered by r, saturating at math.MaxInt64.
// An inverted range has a span of zero.
func (r Range) Span() int64 {
	if r.From > r.To {
		return 0
	}
	d := uint64(r.To) - uint64(r.From)
	if d >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(d) + 1
}

// CountLeapYears returns the number of leap years in r without iterating.
// An inverted range contains no leap years.
func CountLeapYears(r Range) int64 {
	if r.From > r.To {
		return 0
	}
	n := leapsThrough(r.To) - leapsThrough(r.From)
	if IsLeapYear(r.From) {
		n++
	}
	return n
}

// leapsThrough counts leap years in (0, n] for positive n, and the negated
// count in (n, 0] otherwise. Differences of it count leap years in half-open
// intervals, which is all CountLeapYears needs.
func leapsThrough(n int64) int64 {
	return floorDiv(n, 4) - floorDiv(n, 100) + floorDiv(n, 400)
}

// floorDiv divides rounding toward negative infinity. d must be positive.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d < 0 {
		q--
	}
	return q
}
