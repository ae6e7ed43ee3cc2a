package lowtexpal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextureSize(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{1, 1}, {2, 2}, {3, 2}, {4, 2}, {5, 4}, {16, 4},
		{17, 8}, {64, 8}, {65, 16}, {256, 16},
	}
	for _, tt := range tests {
		got, err := TextureSize(tt.n)
		if err != nil {
			t.Errorf("TextureSize(%d) error: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TextureSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got*got < tt.n {
			t.Errorf("TextureSize(%d) = %d holds only %d cells", tt.n, got, got*got)
		}
	}
}

func TestTextureSizeErrors(t *testing.T) {
	if _, err := TextureSize(MaxEntries + 1); !errors.Is(err, ErrPaletteTooLarge) {
		t.Errorf("TextureSize(%d) err = %v, want ErrPaletteTooLarge", MaxEntries+1, err)
	}
	if _, err := TextureSize(0); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("TextureSize(0) err = %v, want ErrEmptyPalette", err)
	}
}

func TestLayoutCells(t *testing.T) {
	l, err := NewLayout(5)
	if err != nil {
		t.Fatal(err)
	}
	type cell struct{ X, Y int }
	var got []cell
	for i := 0; i < l.Cells(); i++ {
		x, y, err := l.Cell(i)
		if err != nil {
			t.Fatalf("Cell(%d): %v", i, err)
		}
		got = append(got, cell{x, y})
	}
	want := []cell{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
		{0, 2}, {1, 2}, {2, 2}, {3, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row-major order mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutOverflow(t *testing.T) {
	l := Layout{Size: 2}
	for _, i := range []int{-1, 4, 100} {
		if _, _, err := l.Cell(i); !errors.Is(err, ErrLayoutOverflow) {
			t.Errorf("Cell(%d) err = %v, want ErrLayoutOverflow", i, err)
		}
	}
}
