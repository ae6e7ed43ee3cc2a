// Package lowtexpal manages low poly palette textures: tiny square images
// whose pixels are the entries of a color palette.
//
// # Overview
//
// A [Palette] is an ordered list of colors backed by an image file. Colors
// are appended one at a time or as gradients, and the palette is written
// back as a square texture whose side is just large enough to hold every
// entry.
//
// # Quick Start
//
//	pal := lowtexpal.New("palette.png")
//	if err := pal.Load(); err != nil {
//	    log.Fatal(err)
//	}
//
//	pal.AddRGB(255, 0, 0)
//	if _, err := pal.AddGradient("navy", "gold", 8, "oklch"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if pal.Modified() {
//	    if err := pal.Save(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Gradients
//
// Gradients can be computed in three spaces:
//   - rgb: straight lines through gamma-encoded sRGB
//   - oklab: straight lines through the perceptual OKLab space
//   - oklch: OKLab in polar form, with hue taking the shorter arc
//
// # Texture Layout
//
// Entries are written row-major starting at the top-left pixel. Side length
// grows in steps of 1, 2, 4, 8 and 16 pixels, so a texture holds at most
// [MaxEntries] colors. Fully transparent black pixels mark unused cells and
// are skipped on load.
package lowtexpal
