// Package cli implements leapcheck, a command-line client for the leap-year
// API.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/leapyear-service/internal/adapters/clients/leapyear"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Execute runs leapcheck with os.Args and exits 1 on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading defaults: %v\n", err)
		os.Exit(1)
	}

	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// session is the state shared by all subcommands once flags are parsed.
type session struct {
	cfg     config.ClientConfig
	baseURL string
	timeout time.Duration
	output  string
	debug   bool

	client *leapyear.Client
	logger *slog.Logger
}

// NewRootCmd builds the leapcheck command tree. cfg supplies the client
// defaults that flags override.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	s := &session{cfg: cfg.Client}

	cmd := &cobra.Command{
		Use:          "leapcheck",
		Short:        "Query a leap-year service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&s.baseURL, "base-url", cfg.Client.BaseURL, "Base URL of the leap-year service")
	cmd.PersistentFlags().DurationVar(&s.timeout, "timeout", cfg.Client.Timeout, "Per-request timeout")
	cmd.PersistentFlags().StringVarP(&s.output, "output", "o", OutputText, "Output format: text|json")
	cmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "Log requests and retries to stderr")

	cmd.AddCommand(
		newYearCmd(s),
		newRangeCmd(s),
		newCountCmd(s),
		newReadyCmd(s),
	)
	return cmd
}

// open validates the persistent flags and builds the API client.
func (s *session) open(cmd *cobra.Command) error {
	if !slices.Contains([]string{OutputText, OutputJSON}, s.output) {
		return fmt.Errorf("unsupported output %q (expected %s|%s)", s.output, OutputText, OutputJSON)
	}
	if s.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.timeout)
	}

	level := "warn"
	if s.debug {
		level = "debug"
	}
	s.logger = logging.New(level, logging.FormatText, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithLogger(cmd.Context(), s.logger))

	cfg := s.cfg
	cfg.BaseURL = s.baseURL
	cfg.Timeout = s.timeout
	s.client = leapyear.NewClient(httpclient.New(&cfg, leapyear.ServiceName, nil, s.logger), s.logger)
	return nil
}

func (s *session) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), format: s.output}
}
