package game

import (
	"errors"
	"testing"
)

func TestParseGuessValid(t *testing.T) {
	tests := []struct {
		input    string
		expected uint32
	}{
		{"42", 42},
		{"42\n", 42},
		{"  7 \r\n", 7},
		{"\t100\t", 100},
		{"0", 0},
		{"1000", 1000},
		{"007", 7},
		{"+5", 5},
		{"4294967295", 4294967295},
	}

	for _, tt := range tests {
		got, err := ParseGuess(tt.input)
		if err != nil {
			t.Errorf("ParseGuess(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseGuess(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestParseGuessInvalid(t *testing.T) {
	tests := []struct {
		input string
		kind  ParseErrorKind
	}{
		{"", ParseEmpty},
		{"   \n", ParseEmpty},
		{"abc", ParseInvalidDigit},
		{"notanumber", ParseInvalidDigit},
		{"-5", ParseInvalidDigit},
		{"3.14", ParseInvalidDigit},
		{"+", ParseInvalidDigit},
		{"++5", ParseInvalidDigit},
		{"1 2", ParseInvalidDigit},
		{"0x10", ParseInvalidDigit},
		{"1_000", ParseInvalidDigit},
		{"4294967296", ParseOutOfRange},
		{"99999999999999999999", ParseOutOfRange},
	}

	for _, tt := range tests {
		_, err := ParseGuess(tt.input)
		if err == nil {
			t.Errorf("ParseGuess(%q) should fail", tt.input)
			continue
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseGuess(%q) error = %T, want *ParseError", tt.input, err)
			continue
		}
		if perr.Kind != tt.kind {
			t.Errorf("ParseGuess(%q) kind = %v, want %v", tt.input, perr.Kind, tt.kind)
		}
	}
}

func TestParseErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ParseErrorKind
		expected string
	}{
		{ParseEmpty, "empty"},
		{ParseInvalidDigit, "invalid_digit"},
		{ParseOutOfRange, "out_of_range"},
		{ParseErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ParseErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
