package main

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
// Now is called exactly once per run: every artifact of a batch carries
// the same generation date.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
