package lowtexpal

import "fmt"

// MaxEntries is the largest number of colors a palette texture can hold.
const MaxEntries = 256

// TextureSize returns the side length of the square texture needed for n
// entries. Sides grow in the steps 1, 2, 4, 8 and 16.
func TextureSize(n int) (int, error) {
	switch {
	case n < 1:
		return 0, ErrEmptyPalette
	case n == 1:
		return 1, nil
	case n <= 4:
		return 2, nil
	case n <= 16:
		return 4, nil
	case n <= 64:
		return 8, nil
	case n <= MaxEntries:
		return 16, nil
	default:
		return 0, fmt.Errorf("%w: %d entries, at most %d supported", ErrPaletteTooLarge, n, MaxEntries)
	}
}

// Layout places palette entries on a square texture in row-major order,
// starting at the top-left cell.
type Layout struct {
	Size int
}

// NewLayout returns the layout for n entries.
func NewLayout(n int) (Layout, error) {
	size, err := TextureSize(n)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Size: size}, nil
}

// Cells returns the number of cells in the texture.
func (l Layout) Cells() int {
	return l.Size * l.Size
}

// Cell returns the coordinates of entry i (zero-based).
func (l Layout) Cell(i int) (x, y int, err error) {
	if i < 0 || i >= l.Cells() {
		return 0, 0, fmt.Errorf("%w: entry %d, texture %dx%d", ErrLayoutOverflow, i, l.Size, l.Size)
	}
	return i % l.Size, i / l.Size, nil
}
