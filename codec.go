package lowtexpal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	// WebP textures can be loaded but not written.
	_ "golang.org/x/image/webp"
)

// Format is an image file format a palette texture can be written in.
type Format uint8

const (
	// FormatPNG is the default format.
	FormatPNG Format = iota
	// FormatBMP writes 32-bit BMP files.
	FormatBMP
	// FormatTIFF writes uncompressed TIFF files.
	FormatTIFF
)

// String returns the lower case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat looks up a format by name, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch foldName(name) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return FormatPNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from a file extension. Paths without an
// extension use PNG.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatPNG, nil
	}
	return ParseFormat(ext[1:])
}

// Encode writes colors to w as a square texture.
func Encode(w io.Writer, colors []Color, format Format) error {
	pm, err := NewTexture(colors)
	if err != nil {
		return err
	}
	img := pm.ToImage()

	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// Decode reads a texture from r and returns its non-empty cells in row-major
// order.
func Decode(r io.Reader) ([]Color, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("lowtexpal: decode texture: %w", err)
	}
	return FromImage(img).Colors(), nil
}

// Preview returns the texture for colors scaled up by an integer factor with
// nearest-neighbour sampling, so each entry becomes a scale×scale block.
func Preview(colors []Color, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("lowtexpal: preview scale must be positive, got %d", scale)
	}
	pm, err := NewTexture(colors)
	if err != nil {
		return nil, err
	}
	src := pm.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, pm.Width()*scale, pm.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
