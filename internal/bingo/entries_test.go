package bingo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEntries(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing entries fixture: %v", err)
	}
	return path
}

func TestReadEntries(t *testing.T) {
	t.Parallel()

	path := writeEntries(t, `# a comment
first entry

  second entry
	# indented comment
third entry

`)

	got, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}

	want := []string{"first entry", "second entry", "third entry"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadEntriesMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := ReadEntries(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadEntriesEmptyFile(t *testing.T) {
	t.Parallel()

	got, err := ReadEntries(writeEntries(t, ""))
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no entries", got)
	}
}
