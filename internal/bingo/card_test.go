package bingo

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func numberedEntries(n int) []string {
	entries := make([]string, n)
	for i := range entries {
		entries[i] = fmt.Sprintf("entry-%02d", i)
	}
	return entries
}

func TestNewCardOddSizeJokerAtCenter(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 3, 5, 7} {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			t.Parallel()

			card, err := NewCard(numberedEntries(size*size), size, "JOKER", testRand())
			if err != nil {
				t.Fatalf("NewCard: %v", err)
			}

			var flat []string
			for _, row := range card {
				flat = append(flat, row...)
			}
			if len(flat) != size*size {
				t.Fatalf("card has %d cells, want %d", len(flat), size*size)
			}

			jokers := 0
			for i, cell := range flat {
				if cell != "JOKER" {
					continue
				}
				jokers++
				if want := (size*size - 1) / 2; i != want {
					t.Errorf("joker at flat index %d, want %d", i, want)
				}
			}
			if jokers != 1 {
				t.Errorf("card has %d jokers, want 1", jokers)
			}
		})
	}
}

func TestNewCardEvenSizeHasNoJoker(t *testing.T) {
	t.Parallel()

	card, err := NewCard(numberedEntries(16), 4, "JOKER", testRand())
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	for _, row := range card {
		if len(row) != 4 {
			t.Fatalf("row length %d, want 4", len(row))
		}
		for _, cell := range row {
			if cell == "JOKER" {
				t.Error("even-sized card contains a joker")
			}
		}
	}
}

func TestNewCardCellsDistinctAndFromInput(t *testing.T) {
	t.Parallel()

	entries := numberedEntries(30)
	card, err := NewCard(entries, 5, "JOKER", testRand())
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}

	valid := make(map[string]bool, len(entries))
	for _, e := range entries {
		valid[e] = true
	}

	seen := make(map[string]bool)
	for _, row := range card {
		for _, cell := range row {
			if cell == "JOKER" {
				continue
			}
			if seen[cell] {
				t.Errorf("cell %q sampled twice", cell)
			}
			seen[cell] = true
			if !valid[cell] {
				t.Errorf("cell %q not in input entries", cell)
			}
		}
	}
	if len(seen) != 24 {
		t.Errorf("sampled %d distinct entries, want 24", len(seen))
	}
}

func TestNewCardDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	entries := numberedEntries(30)
	first, err := NewCard(entries, 5, "JOKER", testRand())
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	second, err := NewCard(entries, 5, "JOKER", testRand())
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different cards")
	}
}

func TestNewCardErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		size    int
		wantErr error
	}{
		{name: "zero size", entries: numberedEntries(10), size: 0, wantErr: ErrInvalidSize},
		{name: "negative size", entries: numberedEntries(10), size: -3, wantErr: ErrInvalidSize},
		{name: "too few entries", entries: numberedEntries(10), size: 5, wantErr: ErrNotEnoughEntries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCard(tt.entries, tt.size, "JOKER", testRand())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The shortfall check runs against the raw list before deduplication,
// so a list padded with duplicates passes the first check and fails
// when sampling.
func TestNewCardDuplicatesFailAtSampling(t *testing.T) {
	t.Parallel()

	entries := make([]string, 24)
	for i := range entries {
		entries[i] = "same"
	}

	_, err := NewCard(entries, 5, "JOKER", testRand())
	if !errors.Is(err, ErrNotEnoughEntries) {
		t.Fatalf("error = %v, want ErrNotEnoughEntries", err)
	}
	if !strings.Contains(err.Error(), "unique population") {
		t.Errorf("error %q should report the unique population shortfall", err)
	}
}

func TestNewCardShortfallMessageReportsPreDedupCount(t *testing.T) {
	t.Parallel()

	_, err := NewCard(numberedEntries(3), 5, "JOKER", testRand())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "24 entries") {
		t.Errorf("error %q should report the 24-entry requirement", err)
	}
}

func TestFormatCard(t *testing.T) {
	t.Parallel()

	got := FormatCard([][]string{{"a", "b"}, {"c", "d"}})
	want := "[a | b]\n[c | d]\n"
	if got != want {
		t.Errorf("FormatCard() = %q, want %q", got, want)
	}
}
