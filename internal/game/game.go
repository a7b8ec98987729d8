package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/guessnumber/internal/gamedata"
	"github.com/samdwyer/guessnumber/internal/logger"
	"github.com/samdwyer/guessnumber/internal/random"
	"github.com/samdwyer/guessnumber/internal/telemetry"
	"github.com/samdwyer/guessnumber/internal/ui"
)

// The secret is drawn from this closed range.
const (
	SecretMin uint32 = 1
	SecretMax uint32 = 100
)

// Game holds the state of a single session. It is not reusable: once won,
// Run returns ErrSessionOver.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	source    random.Source
	log       *slog.Logger
	tracer    trace.Tracer
	sessionID string
	state     State
	attempts  int
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	msgs := cfg.Messages
	if msgs == nil {
		var err error
		msgs, err = gamedata.LoadMessages()
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}

	source := cfg.Source
	if source == nil {
		rng, err := random.New()
		if err != nil {
			return nil, fmt.Errorf("init random source: %w", err)
		}
		source = rng
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}

	screen := ui.NewScreen(in, out)
	sessionID := uuid.NewString()

	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, msgs, cfg.Color),
		source:    source,
		log:       log.With("session_id", sessionID),
		tracer:    tracer,
		sessionID: sessionID,
		state:     StateAwaitingGuess,
	}, nil
}

// SessionID identifies this session in logs and traces.
func (g *Game) SessionID() string {
	return g.sessionID
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Attempts returns how many guesses parsed successfully so far.
func (g *Game) Attempts() int {
	return g.attempts
}

// Run plays one session: greet, draw the secret, and loop until the player
// guesses it. A read failure ends the session with a *ReadError.
func (g *Game) Run(ctx context.Context) (err error) {
	if g.state.Terminal() {
		return ErrSessionOver
	}

	ctx, span := g.tracer.Start(ctx, "game.session")
	span.SetAttributes(attribute.String("session.id", g.sessionID))
	defer func() {
		span.SetAttributes(
			attribute.Int("attempts", g.attempts),
			attribute.String("state", g.state.String()),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := g.renderer.Welcome(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	secret := g.source.IntRange(SecretMin, SecretMax)
	if secret < SecretMin || secret > SecretMax {
		return ErrSecretOutOfRange
	}
	g.log.Info("session started")

	for !g.state.Terminal() {
		if err := g.turn(ctx, secret); err != nil {
			return err
		}
	}

	g.log.Info("session won", "attempts", g.attempts)
	return nil
}

// turn runs one prompt/read/evaluate iteration.
func (g *Game) turn(ctx context.Context, secret uint32) error {
	if err := g.renderer.Prompt(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	line, err := g.screen.ReadLine()
	if err != nil {
		g.log.Error("read failed", "error", err)
		return &ReadError{Err: err}
	}

	guess, err := ParseGuess(line)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			g.log.Debug("invalid guess", "kind", perr.Kind.String())
			trace.SpanFromContext(ctx).AddEvent("guess.invalid",
				trace.WithAttributes(attribute.String("kind", perr.Kind.String())))
		}
		if err := g.renderer.InvalidNumber(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	return g.evaluate(ctx, guess, secret)
}

// evaluate echoes the guess, reports the comparison and advances the state.
func (g *Game) evaluate(ctx context.Context, guess, secret uint32) error {
	g.attempts++

	_, span := g.tracer.Start(ctx, "game.guess")
	defer span.End()

	outcome := Compare(guess, secret)
	span.SetAttributes(
		attribute.Int("attempt", g.attempts),
		attribute.String("outcome", outcome.String()),
	)
	g.log.Debug("guess evaluated", "attempt", g.attempts, "outcome", outcome.String())

	if err := g.renderer.Guessed(guess); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	var err error
	switch outcome {
	case OutcomeTooSmall:
		err = g.renderer.TooSmall()
	case OutcomeTooBig:
		err = g.renderer.TooBig()
	case OutcomeCorrect:
		err = g.renderer.Win()
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	g.state = g.state.Next(outcome)
	return nil
}
