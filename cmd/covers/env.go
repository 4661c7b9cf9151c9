package main

import (
	"io"
	"os"
	"time"

	"github.com/eoertel/go-printables/internal/covers"
)

// Environment holds injectable dependencies for testability: I/O,
// time, and renderer construction.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Stdin       io.Reader
	NewRenderer func(out io.Writer, quiet bool) *covers.Renderer
}

// DefaultEnv returns the production environment with real command
// execution.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		NewRenderer: covers.NewRenderer,
	}
}
