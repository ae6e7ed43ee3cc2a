package lowtexpal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// stored returns the colors as they read back after a save: each entry
// quantized to bytes.
func stored(colors []Color) []Color {
	out := make([]Color, len(colors))
	for i, c := range colors {
		out[i] = FromBytes(c.Bytes())
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	withAlpha := []Color{
		red,
		FromBytes([4]uint8{12, 34, 56, 78}),
		FromBytes([4]uint8{255, 0, 0, 0}),
	}
	opaque := []Color{red, lime, blue, FromBytes([4]uint8{12, 34, 56, 255})}

	tests := []struct {
		name   string
		format Format
		colors []Color
	}{
		{"png", FormatPNG, withAlpha},
		{"tiff", FormatTIFF, withAlpha},
		{"bmp", FormatBMP, opaque},
		{"png single", FormatPNG, []Color{white}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.colors, tt.format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(stored(tt.colors), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, FormatPNG); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Encode(nil) err = %v, want ErrEmptyPalette", err)
	}
	if err := Encode(&buf, make([]Color, MaxEntries+1), FormatPNG); !errors.Is(err, ErrPaletteTooLarge) {
		t.Errorf("Encode(%d colors) err = %v, want ErrPaletteTooLarge", MaxEntries+1, err)
	}
	if err := Encode(&buf, []Color{red}, Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(Format(99)) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Error("Decode of garbage succeeded")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"palette.png", FormatPNG},
		{"dir.d/palette", FormatPNG},
		{"palette.BMP", FormatBMP},
		{"palette.tif", FormatTIFF},
		{"palette.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v, want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("palette.gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(gif) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestPreview(t *testing.T) {
	colors := []Color{red, lime, blue, white, black}
	img, err := Preview(colors, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("preview is %v, want 12x12", b)
	}
	checks := []struct {
		x, y int
		want Color
	}{
		{0, 0, red},
		{2, 2, red},
		{3, 0, lime},
		{8, 2, blue},
		{11, 0, white},
		{0, 3, black},
	}
	for _, c := range checks {
		if got := img.NRGBAAt(c.x, c.y); got != c.want.NRGBA() {
			t.Errorf("pixel (%d, %d) = %v, want %v", c.x, c.y, got, c.want.NRGBA())
		}
	}
	if _, err := Preview(colors, 0); err == nil {
		t.Error("Preview with scale 0 succeeded")
	}
}
