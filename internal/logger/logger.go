// Package logger builds the structured JSON logger used by the game.
//
// Logs go to a file under the XDG state directory by default so they never
// mix with the game's stdout. Stderr can be added for debugging.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options selects where logs go and how verbose they are.
type Options struct {
	Level  slog.Level
	File   string // empty disables file logging
	Stderr bool

	// Warnings receives setup problems; defaults to os.Stderr.
	Warnings io.Writer
}

// New configures a JSON logger. The returned close function releases the log
// file, if one was opened, and is always non-nil.
//
// Failures to open the log file are reported to opts.Warnings and are not
// fatal. When no writer could be set up, logs are discarded.
func New(opts Options) (*slog.Logger, func() error) {
	warn := opts.Warnings
	if warn == nil {
		warn = os.Stderr
	}

	closeFn := func() error { return nil }
	var writers []io.Writer

	if opts.File != "" {
		file, err := openLogFile(opts.File)
		if err != nil {
			fmt.Fprintf(warn, "Warning: %v. File logging disabled.\n", err)
		} else {
			writers = append(writers, file)
			closeFn = file.Close
		}
	}

	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: opts.Level})
	return slog.New(handler), closeFn
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// openLogFile creates the parent directory (0750) and opens path for
// appending (0640).
func openLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return file, nil
}
