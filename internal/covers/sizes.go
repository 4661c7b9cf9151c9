package covers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSize indicates a malformed or unusable size specification.
var ErrInvalidSize = errors.New("invalid size")

// DefaultSizeSpec is seeded ahead of caller-supplied sizes.
const DefaultSizeSpec = "30:48"

// Page layout constants in millimeters: A4 width with a fixed total
// margin and inter-image gap.
const (
	pageWidthMM   = 210
	pageMarginMM  = 20
	itemGapMM     = 1
	usableWidthMM = pageWidthMM - pageMarginMM
)

// Size holds the layout parameters derived from one "x:y[:copies]"
// specification.
type Size struct {
	Name   string // "{x}x{y}"
	X      int    // width in mm
	Y      int    // height in mm
	Copies int    // times each row is repeated
	PerRow int    // images fitting on one row
}

// ParseSizes parses size specifications into layout parameters. The
// first element is dropped whenever more than one is present: callers
// seed DefaultSizeSpec in front, so any explicitly supplied size
// displaces the default. Later specifications with the same derived
// name replace earlier ones in place.
func ParseSizes(specs []string) ([]Size, error) {
	if len(specs) > 1 {
		specs = specs[1:]
	}

	var sizes []Size
	index := make(map[string]int, len(specs))

	for _, spec := range specs {
		s, err := parseSize(strings.TrimSpace(spec))
		if err != nil {
			return nil, err
		}
		if at, ok := index[s.Name]; ok {
			sizes[at] = s
			continue
		}
		index[s.Name] = len(sizes)
		sizes = append(sizes, s)
	}
	return sizes, nil
}

// parseSize parses a single "x:y[:copies]" specification.
func parseSize(spec string) (Size, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Size{}, fmt.Errorf("%w %q", ErrInvalidSize, spec)
	}

	x, err := parsePositive(parts[0])
	if err != nil {
		return Size{}, fmt.Errorf("%w %q: %v", ErrInvalidSize, spec, err)
	}
	y, err := parsePositive(parts[1])
	if err != nil {
		return Size{}, fmt.Errorf("%w %q: %v", ErrInvalidSize, spec, err)
	}

	copies := 1
	if len(parts) == 3 {
		copies, err = strconv.Atoi(parts[2])
		if err != nil {
			return Size{}, fmt.Errorf("%w %q: %v", ErrInvalidSize, spec, err)
		}
	}

	perRow := usableWidthMM / (x + itemGapMM)
	if perRow < 1 {
		return Size{}, fmt.Errorf("%w %q: width %dmm does not fit on the page", ErrInvalidSize, spec, x)
	}

	return Size{
		Name:   parts[0] + "x" + parts[1],
		X:      x,
		Y:      y,
		Copies: copies,
		PerRow: perRow,
	}, nil
}

// parsePositive parses a strictly positive integer dimension.
func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("dimension must be > 0, got %d", n)
	}
	return n, nil
}
