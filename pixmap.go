package lowtexpal

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular buffer of non-premultiplied 8-bit RGBA pixels.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions. All pixels start
// out Empty.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetBytes sets a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetBytes(x, y int, b [4]uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	copy(p.data[i:i+4], b[:])
}

// Bytes returns a single pixel. Out-of-bounds coordinates read as zero.
func (p *Pixmap) Bytes(x, y int) [4]uint8 {
	var b [4]uint8
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return b
	}
	i := (y*p.width + x) * 4
	copy(b[:], p.data[i:i+4])
	return b
}

// Colors returns the non-empty pixels in row-major order.
func (p *Pixmap) Colors() []Color {
	var out []Color
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := FromBytes(p.Bytes(x, y))
			if !c.IsEmpty() {
				out = append(out, c)
			}
		}
	}
	return out
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetBytes(x, y, [4]uint8{c.R, c.G, c.B, c.A})
		}
	}

	return pm
}

// NewTexture lays colors out on the smallest square pixmap that holds them.
func NewTexture(colors []Color) (*Pixmap, error) {
	layout, err := NewLayout(len(colors))
	if err != nil {
		return nil, err
	}
	pm := NewPixmap(layout.Size, layout.Size)
	for i, c := range colors {
		x, y, err := layout.Cell(i)
		if err != nil {
			return nil, err
		}
		pm.SetBytes(x, y, c.Bytes())
	}
	return pm, nil
}
