// Package covers arranges cover images into printable LaTeX sheets.
package covers

import (
	"fmt"
	"os"
	"strings"

	"github.com/eoertel/go-printables/internal/fileutil"
)

// imageExtensions is the allow-list of supported cover image formats.
var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// IsImageFile reports whether the name carries a supported image
// extension. Only the lower-cased suffix after the last dot is
// checked; file contents are never inspected.
func IsImageFile(name string) bool {
	return imageExtensions[fileutil.Extension(name)]
}

// CollectFiles resolves the list of cover image filenames. When names
// are given explicitly they win over the directory: a first name
// ending in a literal ".csv" or ".txt" is read as a list file (one
// filename per line), and names that do not exist as regular files are
// dropped. Without explicit names the directory is listed. Either way,
// blank and non-image entries are filtered out.
func CollectFiles(names []string, dir string) ([]string, error) {
	var candidates []string

	switch {
	case len(names) > 0:
		candidates = names
		if strings.HasSuffix(names[0], ".csv") || strings.HasSuffix(names[0], ".txt") {
			listed, err := readListFile(names[0])
			if err != nil {
				return nil, err
			}
			candidates = listed
		}
		candidates = keep(candidates, fileutil.FileExists)
	default:
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
		for _, e := range dirEntries {
			candidates = append(candidates, e.Name())
		}
	}

	candidates = keep(candidates, func(f string) bool { return strings.TrimSpace(f) != "" })
	return keep(candidates, IsImageFile), nil
}

// readListFile reads filenames from a .csv/.txt list file, one per line.
func readListFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		names = append(names, strings.TrimSpace(line))
	}
	return names, nil
}

// keep filters a slice in order, retaining elements matching pred.
func keep(items []string, pred func(string) bool) []string {
	kept := items[:0:0]
	for _, it := range items {
		if pred(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
