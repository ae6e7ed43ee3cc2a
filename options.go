package lowtexpal

import "log/slog"

// Option configures a Palette during creation.
//
// Example:
//
//	pal := lowtexpal.New("palette.bmp", lowtexpal.WithFormat(lowtexpal.FormatPNG))
type Option func(*options)

// options holds optional configuration for Palette creation.
type options struct {
	logger    *slog.Logger
	format    Format
	hasFormat bool
}

// WithLogger sets the logger used by a single Palette, overriding the
// package-wide logger from SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFormat forces the image format used by Save. Without it the format is
// derived from the file extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
		o.hasFormat = true
	}
}
