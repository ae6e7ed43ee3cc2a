// Package config loads the optional lowtexpal.toml file that supplies
// defaults for the command line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the file looked up in the working directory when no path
// is given.
const DefaultPath = "lowtexpal.toml"

// Config holds defaults for the command line tool. Flags given on the
// command line take precedence.
type Config struct {
	// File is the palette texture to operate on.
	File string `toml:"file"`
	// Space is the default gradient color space.
	Space string `toml:"space"`
	// Steps is the default number of gradient steps.
	Steps int `toml:"steps"`
	// Format forces the image format, overriding the file extension.
	Format string `toml:"format"`
	// Force adds colors even if they are already in the palette.
	Force bool `toml:"force"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Space: "rgb",
		Steps: 8,
	}
}

// Load reads the config at path on top of Default. A missing file yields the
// defaults when path is DefaultPath, and an error otherwise. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Steps < 1 {
		return cfg, fmt.Errorf("config %s: steps must be at least 1, got %d", path, cfg.Steps)
	}
	return cfg, nil
}
