package bingo

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Sentinel errors for card generation.
var (
	ErrInvalidSize      = errors.New("size must be > 0")
	ErrNotEnoughEntries = errors.New("not enough values in data list")
)

// NewCard samples entries into a size x size card. For odd sizes the
// exact center cell holds the joker text and one fewer entry is drawn.
// The required entry count is checked against the raw entry list
// before duplicates are removed.
func NewCard(entries []string, size int, joker string, rng *rand.Rand) ([][]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cells := size * size
	if size%2 == 1 {
		cells--
	}
	if cells > len(entries) {
		return nil, fmt.Errorf("%w to generate %d entries", ErrNotEnoughEntries, cells)
	}

	sampled, err := sampleUnique(entries, cells, rng)
	if err != nil {
		return nil, err
	}

	if size%2 == 1 {
		sampled = slices.Insert(sampled, len(sampled)/2, joker)
	}

	return reshape(sampled, size), nil
}

// sampleUnique draws n distinct entries uniformly at random without
// replacement. Duplicate entries count once.
func sampleUnique(entries []string, n int, rng *rand.Rand) ([]string, error) {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		unique = append(unique, e)
	}

	if n > len(unique) {
		return nil, fmt.Errorf("%w: sample of %d larger than unique population of %d", ErrNotEnoughEntries, n, len(unique))
	}

	rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})
	return unique[:n], nil
}

// reshape packs a flat list row-major into rows of up to size cells.
// A row is shorter only when the list is exhausted.
func reshape(flat []string, size int) [][]string {
	card := make([][]string, 0, size)
	for y := 0; y < size; y++ {
		row := make([]string, 0, size)
		for x := 0; x < size; x++ {
			idx := y*size + x
			if idx >= len(flat) {
				break
			}
			row = append(row, flat[idx])
		}
		card = append(card, row)
	}
	return card
}

// FormatCard renders a card one row per line, cells joined with " | ".
func FormatCard(card [][]string) string {
	var b strings.Builder
	for _, row := range card {
		b.WriteString("[")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("]\n")
	}
	return b.String()
}
