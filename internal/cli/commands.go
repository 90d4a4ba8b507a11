package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/leapyear-service/internal/app/fanout"
	"github.com/jsamuelsen11/leapyear-service/internal/domain/calendar"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/httpclient"
)

const defaultWorkers = 4

func newYearCmd(s *session) *cobra.Command {
	var workers int

	c := &cobra.Command{
		Use:   "year <year>...",
		Short: "Report whether each year is a leap year",
		Long: "Looks up every year concurrently and prints the verdicts in argument order.\n" +
			"Separate negative years from flags with --.",
		Example: "  leapcheck year 1900 2000 2024\n  leapcheck year -- -400",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := parseYears(args...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			results := fanout.Run(ctx, workers, years, func(ctx context.Context, year int64) (calendar.Verdict, error) {
				return s.client.IsLeapYear(httpclient.WithRequestID(ctx, uuid.NewString()), year)
			})

			var (
				verdicts []calendar.Verdict
				errs     []error
			)
			for i, r := range results {
				if r.Err != nil {
					s.logger.ErrorContext(ctx, "lookup failed", slog.Int64("year", years[i]), slog.Any("error", r.Err))
					errs = append(errs, fmt.Errorf("year %d: %w", years[i], r.Err))
					continue
				}
				verdicts = append(verdicts, r.Value)
			}

			if err := s.printer(cmd).verdicts(verdicts); err != nil {
				return err
			}
			return errors.Join(errs...)
		},
	}

	c.Flags().IntVar(&workers, "workers", defaultWorkers, "Maximum concurrent lookups")
	return c
}

func newRangeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "range <from> <to>",
		Short: "List the verdict for every year in an inclusive range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRange(args)
			if err != nil {
				return err
			}
			verdicts, err := s.client.CheckRange(withRequestID(cmd), r)
			if err != nil {
				return err
			}
			return s.printer(cmd).verdicts(verdicts)
		},
	}
}

func newCountCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "count <from> <to>",
		Short: "Count the leap years in an inclusive range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRange(args)
			if err != nil {
				return err
			}
			n, err := s.client.Count(withRequestID(cmd), r)
			if err != nil {
				return err
			}
			return s.printer(cmd).count(dto.CountResponse{From: r.From, To: r.To, LeapYears: n})
		},
	}
}

func newReadyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Show the service readiness report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := s.client.Ready(withRequestID(cmd))
			if report.Status != "" {
				if perr := s.printer(cmd).health(report); perr != nil {
					return perr
				}
			}
			return err
		},
	}
}

func withRequestID(cmd *cobra.Command) context.Context {
	return httpclient.WithRequestID(cmd.Context(), uuid.NewString())
}

func parseYears(args ...string) ([]int64, error) {
	years := make([]int64, 0, len(args))
	for _, arg := range args {
		y, err := dto.ParseYear(arg)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, nil
}

func parseRange(args []string) (calendar.Range, error) {
	years, err := parseYears(args...)
	if err != nil {
		return calendar.Range{}, err
	}
	return calendar.Range{From: years[0], To: years[1]}, nil
}
