// Package main is the entry point for guessnumber.
package main

import (
	"os"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
