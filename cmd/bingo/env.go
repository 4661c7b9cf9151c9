package main

import (
	"io"
	"math/rand/v2"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Rand   *rand.Rand
}

// DefaultEnv returns the production environment with an entropy-seeded
// random source.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}
