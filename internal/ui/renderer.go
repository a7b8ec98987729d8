package ui

import (
	"github.com/fatih/color"

	"github.com/samdwyer/guessnumber/internal/gamedata"
)

// Renderer writes game messages to a screen.
type Renderer struct {
	screen *Screen
	msgs   *gamedata.Messages

	plain   *color.Color
	warning *color.Color
	hint    *color.Color
	success *color.Color
}

// NewRenderer creates a renderer. When colorize is false every line is
// written as plain text regardless of the terminal.
func NewRenderer(screen *Screen, msgs *gamedata.Messages, colorize bool) *Renderer {
	r := &Renderer{
		screen:  screen,
		msgs:    msgs,
		plain:   color.New(color.Reset),
		warning: color.New(color.FgRed),
		hint:    color.New(color.FgYellow),
		success: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{r.plain, r.warning, r.hint, r.success} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Welcome prints the greeting shown once per session.
func (r *Renderer) Welcome() error {
	return r.line(r.plain, r.msgs.Welcome)
}

// Prompt asks for the next guess.
func (r *Renderer) Prompt() error {
	return r.line(r.plain, r.msgs.Prompt)
}

// InvalidNumber reports input that did not parse.
func (r *Renderer) InvalidNumber() error {
	return r.line(r.warning, r.msgs.InvalidNumber)
}

// Guessed echoes the parsed guess back to the player.
func (r *Renderer) Guessed(guess uint32) error {
	return r.line(r.plain, r.msgs.GuessedLine(guess))
}

// TooSmall reports a guess below the secret.
func (r *Renderer) TooSmall() error {
	return r.line(r.hint, r.msgs.TooSmall)
}

// TooBig reports a guess above the secret.
func (r *Renderer) TooBig() error {
	return r.line(r.hint, r.msgs.TooBig)
}

// Win reports a correct guess.
func (r *Renderer) Win() error {
	return r.line(r.success, r.msgs.Win)
}

func (r *Renderer) line(c *color.Color, msg string) error {
	_, err := c.Fprintln(r.screen.Writer(), msg)
	return err
}
