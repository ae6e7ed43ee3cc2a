package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/gogpu/lowtexpal"
	"github.com/gogpu/lowtexpal/internal/config"
)

// command carries the state shared by all subcommands.
type command struct {
	pal    *lowtexpal.Palette
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

func (c *command) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *command) addColor(args []string) error {
	fs := c.flagSet("add-color")
	var value string
	force := c.cfg.Force
	fs.StringVar(&value, "color", "", "color to add (hex, rgb() or CSS name)")
	fs.StringVar(&value, "c", "", "shorthand for -color")
	fs.BoolVar(&force, "force", force, "add the color even if it already exists")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if value == "" {
		return fmt.Errorf("%w: add-color needs -color", errUsage)
	}

	col, err := lowtexpal.ParseColor(value)
	if err != nil {
		fmt.Fprintf(c.stdout, "Couldn't add %s\n", value)
		return err
	}
	if i := c.pal.Index(col); i > 0 && !force {
		fmt.Fprintf(c.stdout, "%s already exists at %d\n", value, i)
		return nil
	}
	i := c.pal.AddColor(col)
	fmt.Fprintf(c.stdout, "Added %s at %d\n", value, i)
	return nil
}

func (c *command) addGradient(args []string) error {
	fs := c.flagSet("add-gradient")
	var start, end string
	fs.StringVar(&start, "start", "", "first color of the gradient")
	fs.StringVar(&end, "end", "", "last color of the gradient")
	steps := fs.Int("steps", c.cfg.Steps, "number of colors to add")
	space := fs.String("space", c.cfg.Space, "color space: rgb, oklab or oklch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if start == "" || end == "" {
		return fmt.Errorf("%w: add-gradient needs -start and -end", errUsage)
	}

	indices, err := c.pal.AddGradient(start, end, *steps, *space)
	if err != nil {
		fmt.Fprintf(c.stdout, "Couldn't add gradient %s -> %s\n", start, end)
		return err
	}
	fmt.Fprintf(c.stdout, "Added gradient %s -> %s at %d..%d\n", start, end, indices[0], indices[len(indices)-1])
	return nil
}

func (c *command) list(args []string) error {
	fs := c.flagSet("list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	out := termenv.NewOutput(c.stdout)
	for i, col := range c.pal.Colors() {
		b := col.Bytes()
		swatch := out.String("    ").Background(out.Color(fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])))
		fmt.Fprintf(c.stdout, "%3d  %s  %s\n", i+1, col.Hex(), swatch)
	}
	return nil
}

func (c *command) preview(args []string) error {
	fs := c.flagSet("preview")
	output := fs.String("o", "preview.png", "output PNG file")
	scale := fs.Int("scale", 16, "pixels per palette entry")
	if err := fs.Parse(args); err != nil {
		return err
	}

	img, err := lowtexpal.Preview(c.pal.Colors(), *scale)
	if err != nil {
		return err
	}
	f, err := os.Create(*output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "Wrote %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
