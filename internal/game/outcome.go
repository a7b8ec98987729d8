package game

import "cmp"

// Outcome is the result of comparing a guess to the secret.
type Outcome int

const (
	// OutcomeTooSmall - the guess is below the secret
	OutcomeTooSmall Outcome = iota
	// OutcomeTooBig - the guess is above the secret
	OutcomeTooBig
	// OutcomeCorrect - the guess matches the secret
	OutcomeCorrect
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeTooSmall:
		return "too_small"
	case OutcomeTooBig:
		return "too_big"
	case OutcomeCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Compare orders guess against secret.
func Compare(guess, secret uint32) Outcome {
	switch cmp.Compare(guess, secret) {
	case -1:
		return OutcomeTooSmall
	case 1:
		return OutcomeTooBig
	default:
		return OutcomeCorrect
	}
}
