package color

import "github.com/chewxy/math32"

// Reference matrices from Björn Ottosson, "A perceptual color space for
// image processing" (2020).
var (
	// linearToLMS maps linear sRGB to cone responses (M1).
	linearToLMS = [3][3]float32{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}

	// lmsToLab maps cube-rooted cone responses to Lab (M2).
	lmsToLab = [3][3]float32{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}

	// labToLMS is the inverse of lmsToLab.
	labToLMS = [3][3]float32{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}

	// lmsToLinear is the inverse of linearToLMS.
	lmsToLinear = [3][3]float32{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

func mul(m *[3][3]float32, x, y, z float32) (float32, float32, float32) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// LinearToOKLab converts linear sRGB components to OKLab.
func LinearToOKLab(r, g, b float32) Lab {
	l, m, s := mul(&linearToLMS, r, g, b)
	L, A, B := mul(&lmsToLab, Cbrt(l), Cbrt(m), Cbrt(s))
	return Lab{L: L, A: A, B: B}
}

// OKLabToLinear converts an OKLab color to linear sRGB components.
// The result is not clamped and may fall outside [0, 1] for colors that are
// out of the sRGB gamut.
func OKLabToLinear(c Lab) (r, g, b float32) {
	l, m, s := mul(&labToLMS, c.L, c.A, c.B)
	return mul(&lmsToLinear, l*l*l, m*m*m, s*s*s)
}

// SRGBToOKLab converts gamma-encoded sRGB components to OKLab.
func SRGBToOKLab(r, g, b float32) Lab {
	return LinearToOKLab(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
}

// OKLabToSRGB converts an OKLab color to gamma-encoded sRGB components.
// Linear components are clamped to [0, 1] before encoding.
func OKLabToSRGB(c Lab) (r, g, b float32) {
	lr, lg, lb := OKLabToLinear(c)
	return LinearToSRGB(Clamp01(lr)), LinearToSRGB(Clamp01(lg)), LinearToSRGB(Clamp01(lb))
}

// LCh returns the polar form of c.
func (c Lab) LCh() LCh {
	return LCh{
		L: c.L,
		C: math32.Sqrt(c.A*c.A + c.B*c.B),
		H: math32.Atan2(c.B, c.A),
	}
}

// Lab returns the cartesian form of c.
func (c LCh) Lab() Lab {
	return Lab{
		L: c.L,
		A: c.C * math32.Cos(c.H),
		B: c.C * math32.Sin(c.H),
	}
}

// HueDelta returns the signed difference to-from taken along the shorter
// arc, so the result always lies in [-π, π].
func HueDelta(from, to float32) float32 {
	d := to - from
	if d > math32.Pi {
		d -= 2 * math32.Pi
	} else if d < -math32.Pi {
		d += 2 * math32.Pi
	}
	return d
}
