package game

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateAwaitingGuess, "awaiting_guess"},
		{StateWon, "won"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from     State
		outcome  Outcome
		expected State
	}{
		{StateAwaitingGuess, OutcomeTooSmall, StateAwaitingGuess},
		{StateAwaitingGuess, OutcomeTooBig, StateAwaitingGuess},
		{StateAwaitingGuess, OutcomeCorrect, StateWon},
		{StateWon, OutcomeTooSmall, StateWon},
		{StateWon, OutcomeTooBig, StateWon},
		{StateWon, OutcomeCorrect, StateWon},
	}

	for _, tt := range tests {
		got := tt.from.Next(tt.outcome)
		if got != tt.expected {
			t.Errorf("%v.Next(%v) = %v, want %v", tt.from, tt.outcome, got, tt.expected)
		}
	}
}

func TestStateTerminal(t *testing.T) {
	if StateAwaitingGuess.Terminal() {
		t.Error("StateAwaitingGuess should not be terminal")
	}
	if !StateWon.Terminal() {
		t.Error("StateWon should be terminal")
	}
}
