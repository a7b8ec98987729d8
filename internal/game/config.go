package game

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/guessnumber/internal/gamedata"
	"github.com/samdwyer/guessnumber/internal/random"
)

// Config holds the collaborators for one game session. Zero values select
// production defaults.
type Config struct {
	// Input supplies one guess per line. Defaults to os.Stdin.
	Input io.Reader
	// Output receives all player-facing text. Defaults to os.Stdout.
	Output io.Writer
	// Color enables ANSI colours on Output.
	Color bool

	// Source draws the secret. nil means a crypto-seeded generator.
	Source random.Source
	// Messages overrides the embedded message catalog.
	Messages *gamedata.Messages
	// Logger receives session events. nil discards them.
	Logger *slog.Logger
	// Tracer records session and guess spans. nil uses the global provider.
	Tracer trace.Tracer
}
