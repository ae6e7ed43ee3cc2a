// Package color implements the color-space math behind lowtexpal gradients:
// the sRGB transfer curves, OKLab and its polar form OKLCH.
//
// All functions work on float32 channels and are free of state.
package color

// Lab is a color in the OKLab space: perceptual lightness L plus the two
// opponent axes A (green-red) and B (blue-yellow).
type Lab struct {
	L, A, B float32
}

// LCh is the polar form of Lab. C is chroma, H is hue in radians.
type LCh struct {
	L, C, H float32
}

// Lerp interpolates each axis of l and other independently.
func (l Lab) Lerp(other Lab, t float32) Lab {
	return Lab{
		L: l.L + (other.L-l.L)*t,
		A: l.A + (other.A-l.A)*t,
		B: l.B + (other.B-l.B)*t,
	}
}

// Lerp interpolates lightness and chroma linearly and hue along the shorter
// arc of the hue circle.
func (c LCh) Lerp(other LCh, t float32) LCh {
	return LCh{
		L: c.L + (other.L-c.L)*t,
		C: c.C + (other.C-c.C)*t,
		H: c.H + HueDelta(c.H, other.H)*t,
	}
}
