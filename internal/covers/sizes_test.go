package covers

import (
	"errors"
	"testing"
)

func TestParseSizesSingleDefault(t *testing.T) {
	t.Parallel()

	sizes, err := ParseSizes([]string{DefaultSizeSpec})
	if err != nil {
		t.Fatalf("ParseSizes: %v", err)
	}
	if len(sizes) != 1 {
		t.Fatalf("got %d sizes, want 1", len(sizes))
	}

	s := sizes[0]
	if s.Name != "30x48" {
		t.Errorf("Name = %q, want 30x48", s.Name)
	}
	if s.X != 30 || s.Y != 48 {
		t.Errorf("dimensions = %dx%d, want 30x48", s.X, s.Y)
	}
	if s.Copies != 1 {
		t.Errorf("Copies = %d, want 1", s.Copies)
	}
	if s.PerRow != 6 {
		t.Errorf("PerRow = %d, want floor(190/31) = 6", s.PerRow)
	}
}

func TestParseSizesDropsSeededDefault(t *testing.T) {
	t.Parallel()

	sizes, err := ParseSizes([]string{DefaultSizeSpec, "25:40"})
	if err != nil {
		t.Fatalf("ParseSizes: %v", err)
	}
	if len(sizes) != 1 {
		t.Fatalf("got %d sizes, want 1", len(sizes))
	}
	if sizes[0].Name != "25x40" {
		t.Errorf("Name = %q, want 25x40 (default dropped)", sizes[0].Name)
	}
	if sizes[0].PerRow != 7 {
		t.Errorf("PerRow = %d, want floor(190/26) = 7", sizes[0].PerRow)
	}
}

func TestParseSizesCopiesAndOrder(t *testing.T) {
	t.Parallel()

	sizes, err := ParseSizes([]string{DefaultSizeSpec, "25:40:2", "30:48:1"})
	if err != nil {
		t.Fatalf("ParseSizes: %v", err)
	}
	if len(sizes) != 2 {
		t.Fatalf("got %d sizes, want 2", len(sizes))
	}
	if sizes[0].Name != "25x40" || sizes[0].Copies != 2 {
		t.Errorf("sizes[0] = %+v, want 25x40 with 2 copies", sizes[0])
	}
	if sizes[1].Name != "30x48" || sizes[1].Copies != 1 {
		t.Errorf("sizes[1] = %+v, want 30x48 with 1 copy", sizes[1])
	}
}

func TestParseSizesDuplicateNameOverwritesInPlace(t *testing.T) {
	t.Parallel()

	sizes, err := ParseSizes([]string{DefaultSizeSpec, "25:40:2", "30:48", "25:40:5"})
	if err != nil {
		t.Fatalf("ParseSizes: %v", err)
	}
	if len(sizes) != 2 {
		t.Fatalf("got %d sizes, want 2", len(sizes))
	}
	if sizes[0].Name != "25x40" || sizes[0].Copies != 5 {
		t.Errorf("sizes[0] = %+v, want 25x40 with later copies value 5", sizes[0])
	}
	if sizes[1].Name != "30x48" {
		t.Errorf("sizes[1].Name = %q, want 30x48", sizes[1].Name)
	}
}

func TestParseSizesTrimsWhitespace(t *testing.T) {
	t.Parallel()

	sizes, err := ParseSizes([]string{" 25:40 "})
	if err != nil {
		t.Fatalf("ParseSizes: %v", err)
	}
	if sizes[0].Name != "25x40" {
		t.Errorf("Name = %q, want 25x40", sizes[0].Name)
	}
}

func TestParseSizesErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
	}{
		{name: "no colon", spec: "25"},
		{name: "too many parts", spec: "25:40:2:9"},
		{name: "non-numeric width", spec: "wide:40"},
		{name: "non-numeric copies", spec: "25:40:many"},
		{name: "zero width", spec: "0:40"},
		{name: "negative height", spec: "25:-40"},
		{name: "wider than page", spec: "200:40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseSizes([]string{tt.spec}); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("ParseSizes(%q) error = %v, want ErrInvalidSize", tt.spec, err)
			}
		})
	}
}
