package lowtexpal

import "errors"

var (
	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("lowtexpal: invalid color")

	// ErrInvalidSteps is returned for gradients with fewer than one step.
	ErrInvalidSteps = errors.New("lowtexpal: gradient needs at least one step")

	// ErrEmptyPalette is returned when a texture is requested for zero entries.
	ErrEmptyPalette = errors.New("lowtexpal: palette has no entries")

	// ErrPaletteTooLarge is returned when a palette holds more than
	// MaxEntries colors.
	ErrPaletteTooLarge = errors.New("lowtexpal: palette too large")

	// ErrLayoutOverflow is returned when an entry index does not fit the
	// texture it is written to.
	ErrLayoutOverflow = errors.New("lowtexpal: entry outside texture")

	// ErrUnsupportedFormat is returned for unknown image formats.
	ErrUnsupportedFormat = errors.New("lowtexpal: unsupported image format")
)
