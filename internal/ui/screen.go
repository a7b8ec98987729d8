// Package ui provides line-based terminal input and coloured output.
package ui

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadLine when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Screen wraps the player's input and output streams.
type Screen struct {
	in  *bufio.Reader
	out io.Writer
}

// NewScreen creates a screen reading lines from in and writing to out.
func NewScreen(in io.Reader, out io.Writer) *Screen {
	return &Screen{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine blocks until a full line is available and returns it with its
// terminator. A final unterminated line is returned without error; the
// following call reports io.EOF. A line that is not valid UTF-8 is a read
// failure, not input to parse.
func (s *Screen) ReadLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}
	return line, nil
}

// Writer returns the output stream.
func (s *Screen) Writer() io.Writer {
	return s.out
}
