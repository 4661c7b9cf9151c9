package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/eoertel/go-printables/internal/bingo"
	"github.com/eoertel/go-printables/internal/config"
)

// ErrNoEntriesFile indicates that neither the CLI nor the config named
// an entries file.
var ErrNoEntriesFile = errors.New("no entries file specified")

// run loads the entries file, builds a card, and prints it.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if flags.config != "" {
		cfg, err = config.Load(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags override config values.
	size := cfg.Bingo.Size
	if flags.sizeSet {
		size = flags.size
	}
	joker := cfg.Bingo.Joker
	if flags.jokerSet {
		joker = flags.joker
	}

	path := cfg.Bingo.File
	if len(positional) > 0 {
		path = positional[0]
	}
	if path == "" {
		return ErrNoEntriesFile
	}

	rng := env.Rand
	if flags.seed != 0 {
		rng = rand.New(rand.NewPCG(flags.seed, flags.seed))
	}

	entries, err := bingo.ReadEntries(path)
	if err != nil {
		return err
	}

	card, err := bingo.NewCard(entries, size, joker, rng)
	if err != nil {
		return err
	}

	fmt.Fprint(env.Stdout, bingo.FormatCard(card))
	return nil
}

// errorKind names the error category used in the reported
// "ERROR: kind: message" line.
func errorKind(err error) string {
	switch {
	case errors.Is(err, bingo.ErrInvalidSize),
		errors.Is(err, bingo.ErrNotEnoughEntries),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, ErrNoEntriesFile):
		return "ValueError"
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, config.ErrConfigNotFound):
		return "FileNotFoundError"
	case errors.Is(err, os.ErrPermission):
		return "PermissionError"
	default:
		return "Error"
	}
}
