package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tornread/tornread"
	"github.com/tornread/tornread/pkg/logger"
)

const version = "0.1.0"

// Exit codes
const (
	exitReproduced    = 0
	exitNotReproduced = 1
	exitBadConfig     = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	config := tornread.NewConfig()

	var (
		logLevel string
		quiet    bool
		jsonOut  bool
	)

	var (
		summary *tornread.Summary
		runErr  error
	)

	cmd := &cobra.Command{
		Use:     "reproduce-race",
		Short:   "Provoke and detect a torn read of a shared composite value",
		Long: `reproduce-race stresses a deliberately unsynchronized status value:
one goroutine replaces it with a longer string while many goroutines
serialize it, until some serialization shows the new data truncated to
the old length (e.g. "cancelled" observed as "cancelle").

Reproduction is environment dependent; exhausting the trial budget
without observing corruption is a valid outcome and exits with code 1.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("%w: unknown log level %q", tornread.ErrInvalidConfig, logLevel)
			}
			if !quiet {
				lg := logger.New().AtLevel(level).Console().Make()
				config.Logger = &lg
			}
			if err := config.Validate(); err != nil {
				return err
			}
			summary, runErr = tornread.Do(cmd.Context(), config)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&config.Observers, "observers", config.Observers, "concurrent observers per trial")
	flags.IntVar(&config.MaxTrials, "max-trials", config.MaxTrials, "trial budget before reporting not reproduced")
	flags.DurationVar(&config.Timeout, "timeout", config.Timeout, "per-trial collection timeout")
	flags.StringVar(&config.Baseline, "baseline", config.Baseline, "status value every trial starts from")
	flags.StringVar(&config.Target, "target", config.Target, "status value the mutator writes (must be longer than baseline)")
	flags.BoolVar(&config.Atomic, "atomic", false, "use the atomic control update path instead of the racy one")
	flags.IntVar(&config.ProgressEvery, "progress-every", config.ProgressEvery, "log progress after this many trials (0 disables)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&quiet, "quiet", false, "disable logging entirely")
	flags.BoolVar(&jsonOut, "json", false, "print the final summary as JSON")

	cmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitBadConfig
	}
	if summary == nil {
		// help or version path
		return exitReproduced
	}

	report(summary, jsonOut)

	switch {
	case runErr == nil:
		return exitReproduced
	case errors.Is(runErr, tornread.ErrNotReproduced):
		return exitNotReproduced
	case errors.Is(runErr, context.Canceled):
		fmt.Fprintln(os.Stderr, "Interrupted")
		return exitNotReproduced
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return exitBadConfig
	}
}

func report(summary *tornread.Summary, jsonOut bool) {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to encode summary: %v\n", err)
		}
		return
	}
	fmt.Println(summary)
}
