package lowtexpal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// foldName case-folds a color, space or format name. A Caser keeps state,
// so each call gets its own.
func foldName(s string) string {
	return cases.Fold().String(s)
}

// ParseColor parses a textual color. Supported forms:
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - functional: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)", "rgb(100%, 0%, 0%)"
//   - CSS named colors such as "red" or "cornflowerblue", and "transparent"
//
// Names and function names are matched case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if s[0] == '#' {
		b, err := parseHex(s[1:])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return FromBytes(b), nil
	}

	name := foldName(s)
	if strings.HasSuffix(name, ")") {
		b, err := parseFunc(name)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return FromBytes(b), nil
	}

	if name == "transparent" {
		return Empty, nil
	}
	nc, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}
	return FromBytes([4]uint8{nc.R, nc.G, nc.B, nc.A}), nil
}

// MustParseColor is like ParseColor but panics on error. It is meant for
// package-level variables and tests.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex parses the digits of a hex color without the leading '#'.
func parseHex(hex string) ([4]uint8, error) {
	out := [4]uint8{0, 0, 0, 255}

	var width int
	switch len(hex) {
	case 3, 4:
		width = 1
	case 6, 8:
		width = 2
	default:
		return out, fmt.Errorf("expected 3, 4, 6 or 8 hex digits, got %d", len(hex))
	}

	for i := 0; i*width < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return out, err
		}
		if width == 1 {
			v *= 17
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// parseFunc parses "rgb(...)" and "rgba(...)". The input is already folded.
func parseFunc(s string) ([4]uint8, error) {
	out := [4]uint8{0, 0, 0, 255}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return out, errors.New("missing '('")
	}
	fn := strings.TrimSpace(s[:open])
	if fn != "rgb" && fn != "rgba" {
		return out, fmt.Errorf("unknown function %q", fn)
	}

	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return out, fmt.Errorf("%s() takes 3 or 4 arguments, got %d", fn, len(args))
	}

	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		if strings.HasSuffix(arg, "%") {
			arg = strings.TrimSuffix(arg, "%")
			scale = 100
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return out, fmt.Errorf("argument %d: %w", i+1, err)
		}
		if v < 0 || v > scale {
			return out, fmt.Errorf("argument %d out of range: %s", i+1, arg)
		}
		if scale == 255 {
			out[i] = uint8(v)
			continue
		}
		// Fractions are truncated rather than rounded.
		out[i] = uint8(255 * v / scale)
	}
	return out, nil
}
