package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
)

// printer writes command results as plain text or JSON documents shaped like
// the API's own responses.
type printer struct {
	w      io.Writer
	format string
}

func (p printer) verdicts(vs []calendar.Verdict) error {
	if p.format == OutputJSON {
		return p.json(dto.ToYearListResponse(vs))
	}
	for _, v := range vs {
		kind := "common"
		if v.Leap {
			kind = "leap"
		}
		if _, err := fmt.Fprintf(p.w, "%d\t%s\n", v.Year, kind); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) count(c dto.CountResponse) error {
	if p.format == OutputJSON {
		return p.json(c)
	}
	_, err := fmt.Fprintf(p.w, "%d leap years in %d..%d\n", c.LeapYears, c.From, c.To)
	return err
}

func (p printer) health(h dto.HealthResponse) error {
	if p.format == OutputJSON {
		return p.json(h)
	}
	if _, err := fmt.Fprintln(p.w, h.Status); err != nil {
		return err
	}
	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(p.w, "  %s: %s\n", name, h.Checks[name]); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) json(v any) error {
	enc := dto.JSON.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
