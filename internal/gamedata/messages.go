package gamedata

import (
	"fmt"
	"strings"
)

// Messages is the catalog of text shown to the player, loaded from
// messages.yaml.
type Messages struct {
	Welcome       string `yaml:"welcome"`
	Prompt        string `yaml:"prompt"`
	InvalidNumber string `yaml:"invalid_number"`
	Guessed       string `yaml:"guessed"` // fmt template taking the guess
	TooSmall      string `yaml:"too_small"`
	TooBig        string `yaml:"too_big"`
	Win           string `yaml:"win"`
}

// LoadMessages loads the embedded message catalog.
func LoadMessages() (*Messages, error) {
	msgs, err := Load[Messages]("messages.yaml")
	if err != nil {
		return nil, err
	}
	if err := msgs.Validate(); err != nil {
		return nil, fmt.Errorf("messages.yaml: %w", err)
	}
	return &msgs, nil
}

// MustLoadMessages loads the message catalog, panicking on error.
func MustLoadMessages() *Messages {
	msgs := MustLoad[Messages]("messages.yaml")
	if err := msgs.Validate(); err != nil {
		panic(fmt.Errorf("messages.yaml: %w", err))
	}
	return &msgs
}

// Validate reports the first missing entry.
func (m *Messages) Validate() error {
	fields := []struct {
		key, value string
	}{
		{"welcome", m.Welcome},
		{"prompt", m.Prompt},
		{"invalid_number", m.InvalidNumber},
		{"guessed", m.Guessed},
		{"too_small", m.TooSmall},
		{"too_big", m.TooBig},
		{"win", m.Win},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("missing message %q", f.key)
		}
	}
	if strings.Count(m.Guessed, "%d") != 1 {
		return fmt.Errorf("message %q must contain exactly one %%d", "guessed")
	}
	return nil
}

// GuessedLine renders the guess confirmation.
func (m *Messages) GuessedLine(guess uint32) string {
	return fmt.Sprintf(m.Guessed, guess)
}
