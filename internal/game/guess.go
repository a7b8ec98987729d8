package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseErrorKind classifies why a line is not a valid guess.
type ParseErrorKind int

const (
	// ParseEmpty - nothing left after trimming whitespace
	ParseEmpty ParseErrorKind = iota
	// ParseInvalidDigit - a character other than 0-9 (one leading '+' is allowed)
	ParseInvalidDigit
	// ParseOutOfRange - the number does not fit in 32 unsigned bits
	ParseOutOfRange
)

// String returns a human-readable kind name.
func (k ParseErrorKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseInvalidDigit:
		return "invalid_digit"
	case ParseOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// ParseError is returned by ParseGuess. It is recoverable: the player is
// asked again.
type ParseError struct {
	Input string
	Kind  ParseErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid guess %q: %s", e.Input, e.Kind)
}

// ParseGuess trims surrounding whitespace from line and parses it as an
// unsigned 32-bit decimal. Values outside the secret's range are accepted.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, &ParseError{Input: s, Kind: ParseEmpty}
	}

	digits := strings.TrimPrefix(s, "+")
	if digits == "" {
		return 0, &ParseError{Input: s, Kind: ParseInvalidDigit}
	}

	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		kind := ParseInvalidDigit
		if errors.Is(err, strconv.ErrRange) {
			kind = ParseOutOfRange
		}
		return 0, &ParseError{Input: s, Kind: kind}
	}
	return uint32(v), nil
}
