package lowtexpal

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Palette is an ordered list of colors stored in a texture file.
//
// Entries keep their insertion order and are never removed. Any successful
// append marks the palette modified; a successful Save or Load clears the
// mark.
//
// A Palette is not safe for concurrent use.
type Palette struct {
	path     string
	colors   []Color
	modified bool
	opts     options
}

// New creates an empty palette bound to path. Call Load to read existing
// entries.
func New(path string, opts ...Option) *Palette {
	p := &Palette{path: path}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Path returns the file the palette is bound to.
func (p *Palette) Path() string {
	return p.path
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the entries.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Modified reports whether entries were added since the last Load or Save.
func (p *Palette) Modified() bool {
	return p.modified
}

// Persisted reports whether no entries were added since the last Load or
// Save. A new palette that was never loaded or saved counts as persisted,
// even though no file exists yet.
func (p *Palette) Persisted() bool {
	return !p.modified
}

func (p *Palette) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

// Load replaces the entries with the non-empty pixels of the palette file.
// A missing file is not an error: the palette is simply empty.
func (p *Palette) Load() error {
	f, err := os.Open(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		p.logger().Debug("lowtexpal: no palette file yet", "path", p.path)
		p.colors = nil
		p.modified = false
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	colors, err := Decode(f)
	if err != nil {
		return fmt.Errorf("%w (%s)", err, p.path)
	}
	p.colors = colors
	p.modified = false

	p.logger().Info("lowtexpal: loaded palette", "path", p.path, "entries", len(colors))
	return nil
}

// Save writes the entries to the palette file. An empty palette is not
// written. The file is left untouched if the texture cannot be built.
func (p *Palette) Save() error {
	if len(p.colors) == 0 {
		p.logger().Info("lowtexpal: no colors, not saving", "path", p.path)
		return nil
	}

	format := p.opts.format
	if !p.opts.hasFormat {
		var err error
		if format, err = FormatFromPath(p.path); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, p.colors, format); err != nil {
		return err
	}
	//nolint:gosec // path is user-provided intentionally
	if err := os.WriteFile(p.path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	p.modified = false

	size, _ := TextureSize(len(p.colors))
	p.logger().Info("lowtexpal: saved palette",
		"path", p.path, "entries", len(p.colors), "size", size, "format", format)
	return nil
}

// AddColor appends c and returns its 1-based index.
//
// Empty (all channels zero) marks an unused texture cell, so an Empty entry
// is written by Save but skipped by Load. After a reload every entry that
// followed it moves down by one index.
func (p *Palette) AddColor(c Color) int {
	p.colors = append(p.colors, c)
	p.modified = true
	p.logger().Debug("lowtexpal: added color", "color", c, "index", len(p.colors))
	return len(p.colors)
}

// AddBytes appends a color given as 8-bit RGBA components.
func (p *Palette) AddBytes(b [4]uint8) int {
	return p.AddColor(FromBytes(b))
}

// AddRGB appends an opaque color.
func (p *Palette) AddRGB(r, g, b uint8) int {
	return p.AddColor(RGB(r, g, b))
}

// AddString parses s with ParseColor and appends the result. Like AddColor,
// "transparent" is accepted but does not survive a reload.
func (p *Palette) AddString(s string) (int, error) {
	c, err := ParseColor(s)
	if err != nil {
		return 0, err
	}
	return p.AddColor(c), nil
}

// AddGradient appends steps colors from start to end, interpolated in the
// named space (see ParseSpace). Nothing is appended on error. It returns
// the 1-based indices of the new entries.
func (p *Palette) AddGradient(start, end string, steps int, space string) ([]int, error) {
	colors, err := InterpolateStrings(start, end, steps, space)
	if err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(colors))
	for _, c := range colors {
		indices = append(indices, p.AddColor(c))
	}
	return indices, nil
}

// Index returns the 1-based index of the first entry with the same 8-bit
// value as c, or 0 if there is none.
func (p *Palette) Index(c Color) int {
	want := c.Bytes()
	for i, e := range p.colors {
		if e.Bytes() == want {
			return i + 1
		}
	}
	return 0
}
