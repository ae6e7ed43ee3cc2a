package lowtexpal

import (
	"fmt"
	"image/color"

	ic "github.com/gogpu/lowtexpal/internal/color"
)

// Color is a palette entry with red, green, blue and alpha components.
// Components are nominally in [0, 1] but are not clamped during arithmetic;
// conversion to bytes clamps.
type Color struct {
	R, G, B, A float32
}

// Empty is the all-zero color. Texture cells holding it are unused.
var Empty = Color{}

// Lab is a color in the OKLab space.
type Lab = ic.Lab

// LCh is a color in the OKLCH space, the polar form of OKLab. Hue is in
// radians.
type LCh = ic.LCh

// FromBytes creates a color from 8-bit RGBA components.
func FromBytes(b [4]uint8) Color {
	return Color{
		R: float32(b[0]) / 255.0,
		G: float32(b[1]) / 255.0,
		B: float32(b[2]) / 255.0,
		A: float32(b[3]) / 255.0,
	}
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return FromBytes([4]uint8{r, g, b, 255})
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	if fc, ok := c.(Color); ok {
		return fc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromBytes([4]uint8{n.R, n.G, n.B, n.A})
}

// Bytes converts c to 8-bit components. Each component is scaled by 255,
// clamped to [0, 255] and truncated.
func (c Color) Bytes() [4]uint8 {
	return [4]uint8{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)}
}

// NRGBA returns c as a non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	b := c.Bytes()
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex returns c as a lower case "#rrggbbaa" string.
func (c Color) Hex() string {
	b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", b[0], b[1], b[2], b[3])
}

// IsEmpty reports whether all four components are exactly zero.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Sub returns the component-wise difference c - other.
func (c Color) Sub(other Color) Color {
	return Color{
		R: c.R - other.R,
		G: c.G - other.G,
		B: c.B - other.B,
		A: c.A - other.A,
	}
}

// Div divides every component by n. Callers must not pass zero.
func (c Color) Div(n int) Color {
	f := float32(n)
	return Color{
		R: c.R / f,
		G: c.G / f,
		B: c.B / f,
		A: c.A / f,
	}
}

// Add adds other to c in place, without saturation.
func (c *Color) Add(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	c.A += other.A
}

// OKLab converts the RGB components of c to OKLab. Alpha is dropped.
func (c Color) OKLab() Lab {
	return ic.SRGBToOKLab(c.R, c.G, c.B)
}

// FromOKLab converts an OKLab color to an opaque Color. Colors outside the
// sRGB gamut are clamped per channel.
func FromOKLab(lab Lab) Color {
	r, g, b := ic.OKLabToSRGB(lab)
	return Color{R: r, G: g, B: b, A: 1}
}

// OKLCh converts the RGB components of c to OKLCH. Alpha is dropped.
func (c Color) OKLCh() LCh {
	return c.OKLab().LCh()
}

// FromOKLCh converts an OKLCH color to an opaque Color.
func FromOKLCh(lch LCh) Color {
	return FromOKLab(lch.Lab())
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// toByte scales a [0, 1] component to [0, 255] and truncates. NaN maps to 0.
func toByte(v float32) uint8 {
	x := v * 255.0
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
