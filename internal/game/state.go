// Package game provides the guessing loop and its state machine.
package game

// State represents the current session state.
type State int

const (
	// StateAwaitingGuess is the initial state, re-entered after every wrong
	// or unparseable guess.
	StateAwaitingGuess State = iota
	// StateWon is terminal and reached only by a correct guess.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Next returns the state after a guess with the given outcome.
func (s State) Next(o Outcome) State {
	if s == StateWon {
		return StateWon
	}
	if o == OutcomeCorrect {
		return StateWon
	}
	return StateAwaitingGuess
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool {
	return s == StateWon
}
