package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// bingoFlags holds all flags for the bingo CLI. The *Set fields record
// whether a flag was given explicitly, so config file values only
// apply when it was not.
type bingoFlags struct {
	config string
	size   int
	joker  string
	seed   uint64

	sizeSet  bool
	jokerSet bool
}

// parseFlags parses CLI flags and returns the positional args.
func parseFlags(args []string) (*bingoFlags, []string, error) {
	fs := flag.NewFlagSet("bingo", flag.ContinueOnError)
	f := &bingoFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.size, "size", "s", 5, "size of the bingo square (only odd sizes get a center joker field)")
	fs.StringVarP(&f.joker, "joker", "j", "JOKER", "text for the center joker field")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed for reproducible cards (0 = system entropy)")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.sizeSet = fs.Changed("size")
	f.jokerSet = fs.Changed("joker")

	return f, fs.Args(), nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bingo [flags] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a random bingo card from an entries file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Path to the entries file, one entry per line. Lines prefixed")
	fmt.Fprintln(w, "          with # (comments) and empty lines are ignored.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --size <n>        Size of the bingo square (default 5)")
	fmt.Fprintln(w, "  -j, --joker <s>       Text for the center joker field (default JOKER)")
	fmt.Fprintln(w, "      --seed <n>        Random seed for reproducible cards (0 = entropy)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
}
