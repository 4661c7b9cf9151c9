// Package bingo builds randomized bingo cards from a line-oriented
// entries file.
package bingo

import (
	"fmt"
	"os"
	"strings"
)

// ReadEntries reads a bingo entries file, one entry per line. Lines
// whose first non-whitespace character is '#' and blank lines are
// dropped; surviving lines are returned trimmed, in file order.
func ReadEntries(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading entries file: %w", err)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}
