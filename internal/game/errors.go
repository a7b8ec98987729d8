package game

import "errors"

var (
	// ErrSecretOutOfRange means the random source drew outside [SecretMin, SecretMax].
	ErrSecretOutOfRange = errors.New("secret out of range")
	// ErrSessionOver is returned when Run is called on a finished game.
	ErrSessionOver = errors.New("session already won")
)

// ReadError is fatal: the input stream failed or closed. It wraps the
// underlying error, io.EOF for a closed stream.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "failed to read line: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
