package main

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eoertel/go-printables/internal/config"
	"github.com/eoertel/go-printables/internal/covers"
)

// run drives the collect -> confirm -> write -> confirm -> render
// sequence. A declined prompt ends the run cleanly at that point.
func run(args []string, env *Environment) error {
	flags, _, err := parseFlags(args)
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
	path := cfg.Covers.Path
	if flags.pathSet {
		path = flags.path
	}
	quiet := cfg.Covers.Quiet || flags.quiet
	answerYes := cfg.Covers.AnswerYes || flags.answerYes

	// One reader for all prompts so buffered input is not lost between
	// questions.
	stdin := bufio.NewReader(env.Stdin)

	// The default size is seeded first; the parser drops it again as
	// soon as any size was supplied explicitly.
	sizeSpecs := []string{covers.DefaultSizeSpec}
	sizeSpecs = append(sizeSpecs, cfg.Covers.Sizes...)
	sizeSpecs = append(sizeSpecs, flags.sizes...)

	filenames, err := covers.CollectFiles(flags.files, path)
	if err != nil {
		return err
	}

	if quiet {
		fmt.Fprintf(env.Stdout, ">>> %d files found.\n", len(filenames))
	} else {
		fmt.Fprintf(env.Stdout, ">>> filenames: %s\n", joinBasenames(filenames))
	}

	if !answerYes && !askContinue(env, stdin, "continue [y/n]? > ") {
		return nil
	}

	sizes, err := covers.ParseSizes(sizeSpecs)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, ">>> generated data for %d output files\n", len(sizes))
	}

	writer := &covers.Writer{Now: env.Now, TimestampFormat: cfg.Output.TimestampFormat}
	outPaths, err := writer.WriteDocuments(path, filenames, sizes)
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, ">>> printed %d .tex files: %s\n", len(outPaths), strings.Join(outPaths, ", "))
	}

	if !answerYes && !askContinue(env, stdin, "run xelatex on .tex files [y/n]? > ") {
		return nil
	}

	renderer := env.NewRenderer(env.Stdout, quiet)
	if !renderer.Available() {
		fmt.Fprintln(env.Stdout, ">>> xelatex is not installed.")
		return nil
	}

	renderer.RenderAll(outPaths)

	if answerYes || askContinue(env, stdin, "remove .aux .log files [y/n]? > ") {
		renderer.RemoveByproducts(outPaths)
	}
	return nil
}

// askContinue reads one line from stdin; only a trimmed, lower-cased
// literal "y" counts as yes.
func askContinue(env *Environment, stdin *bufio.Reader, question string) bool {
	fmt.Fprint(env.Stdout, question)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}

// joinBasenames renders the collected filenames as comma-separated
// basenames for display.
func joinBasenames(paths []string) string {
	bases := make([]string, len(paths))
	for i, p := range paths {
		bases[i] = filepath.Base(p)
	}
	return strings.Join(bases, ", ")
}
