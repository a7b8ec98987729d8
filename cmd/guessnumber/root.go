package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/guessnumber/internal/config"
	"github.com/samdwyer/guessnumber/internal/game"
	"github.com/samdwyer/guessnumber/internal/logger"
	"github.com/samdwyer/guessnumber/internal/random"
	"github.com/samdwyer/guessnumber/internal/telemetry"
)

// newRootCmd builds the single command. The game itself takes no arguments
// or flags; settings for logging and tracing come from the environment.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guessnumber",
		Short: "Guess the secret number between 1 and 100",
		Long: `guessnumber picks a secret number between 1 and 100 and reads guesses
from standard input, one per line, until you find it.

Logging and tracing are configured through GUESSNUMBER_* environment
variables or a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), nil)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

const telemetryShutdownTimeout = 5 * time.Second

// run wires configuration, logging and telemetry around one game session.
// A nil source selects the crypto-seeded generator.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer, source random.Source) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// .env is optional; variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog := logger.New(logger.Options{
		Level:    cfg.LogLevel,
		File:     cfg.LogFile,
		Stderr:   cfg.LogStderr,
		Warnings: errOut,
	})
	defer closeLog()

	if envErr != nil {
		log.Debug(".env file not loaded", "error", envErr)
	}

	tracer := telemetry.NoopTracer()
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:  cfg.TelemetryEnabled(),
		Endpoint: cfg.OTLPEndpoint(),
		Headers:  cfg.OTLPHeaders(),
	})
	if err != nil {
		// Game still works without observability.
		log.Warn("telemetry setup failed", "error", err)
	} else if cfg.TelemetryEnabled() {
		tracer = telemetry.Tracer("game")
	}
	defer func() {
		// An unreachable collector must not hold the process after the win.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	g, err := game.New(game.Config{
		Input:  in,
		Output: out,
		Color:  isStdout(out) && !color.NoColor,
		Source: source,
		Logger: log,
		Tracer: tracer,
	})
	if err != nil {
		return err
	}

	return g.Run(ctx)
}

// isStdout reports whether w is the process's real stdout. Colour is only
// considered there; any other writer gets plain text.
func isStdout(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout
}
