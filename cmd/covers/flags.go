package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// coversFlags holds all flags for the covers CLI. The *Set fields
// record whether a flag was given explicitly, so config file values
// only apply when it was not.
type coversFlags struct {
	config    string
	path      string
	files     []string
	sizes     []string
	quiet     bool
	answerYes bool

	pathSet bool
}

// parseFlags parses CLI flags and returns the positional args.
func parseFlags(args []string) (*coversFlags, []string, error) {
	fs := flag.NewFlagSet("covers", flag.ContinueOnError)
	f := &coversFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.path, "path", "p", ".", "directory containing the cover images; output files are placed here as well. ignored when --file is used")
	fs.StringArrayVarP(&f.files, "file", "f", nil, "filenames to create printables for, or one .csv/.txt file containing filenames, one per line")
	fs.StringArrayVarP(&f.sizes, "size", "s", nil, "sizes to create printables for, repeatable. syntax: <x-mm>:<y-mm>[:<num-copies-per-cover>] (default 30:48)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "less verbose output")
	fs.BoolVarP(&f.answerYes, "answer-yes", "y", false, "answer yes to all interactive questions")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.pathSet = fs.Changed("path")

	return f, fs.Args(), nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: covers [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate printable pages of miniature book covers. Cover images must")
	fmt.Fprintln(w, "be in JPG or PNG format. One .tex file is written per size; xelatex")
	fmt.Fprintln(w, "is invoked on each when available.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -p, --path <dir>      Image and output directory (default .)")
	fmt.Fprintln(w, "  -f, --file <name>     Image filenames, or one .csv/.txt list file")
	fmt.Fprintln(w, "  -s, --size <spec>     Size spec <x-mm>:<y-mm>[:<copies>], repeatable")
	fmt.Fprintln(w, "  -q, --quiet           Less verbose output")
	fmt.Fprintln(w, "  -y, --answer-yes      Answer yes to all interactive questions")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
}
