package covers

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/eoertel/go-printables/internal/fileutil"
)

// xelatexBinary is the external typesetting binary.
const xelatexBinary = "xelatex"

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Renderer invokes xelatex on generated documents and cleans up its
// byproducts. Failures are reported to Out and never abort the run.
type Renderer struct {
	Runner   CommandRunner
	LookPath func(string) (string, error) // binary discovery, exec.LookPath in production
	Out      io.Writer
	Quiet    bool
}

// NewRenderer creates a Renderer with real command execution.
func NewRenderer(out io.Writer, quiet bool) *Renderer {
	return &Renderer{
		Runner:   &ExecRunner{},
		LookPath: exec.LookPath,
		Out:      out,
		Quiet:    quiet,
	}
}

// Available reports whether the typesetting binary is discoverable on
// the system path. Absence is a skippable condition, not an error.
func (r *Renderer) Available() bool {
	_, err := r.LookPath(xelatexBinary)
	return err == nil
}

// RenderAll invokes xelatex once per document. A non-zero exit is
// reported per file with its captured error output; remaining files
// are still processed. Returns the number of failed invocations.
func (r *Renderer) RenderAll(paths []string) int {
	failed := 0
	for _, path := range paths {
		_, stderr, err := r.Runner.Run(xelatexBinary, path)
		if err != nil {
			failed++
			fmt.Fprintf(r.Out, ">>> ERROR: failed running %s on %s: %s\n", xelatexBinary, path, stderr)
			continue
		}
		if !r.Quiet {
			fmt.Fprintf(r.Out, ">>> %s %s success\n", xelatexBinary, path)
		}
	}
	return failed
}

// RemoveByproducts deletes the .aux and .log files xelatex leaves next
// to each document. Deletion errors are reported, never returned.
func (r *Renderer) RemoveByproducts(paths []string) {
	for _, path := range paths {
		base := fileutil.TrimExtension(path)
		r.removeFile(base + ".aux")
		r.removeFile(base + ".log")
	}
}

func (r *Renderer) removeFile(path string) {
	if err := os.Remove(path); err != nil {
		fmt.Fprintf(r.Out, ">>> ERROR: %s - %v\n", path, err)
	}
}
