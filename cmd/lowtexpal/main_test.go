package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lowtexpal"
)

type result struct {
	code           int
	stdout, stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return filepath.Join(dir, "pal.png")
}

func loadPalette(t *testing.T, path string) *lowtexpal.Palette {
	t.Helper()
	p := lowtexpal.New(path)
	require.NoError(t, p.Load())
	return p
}

func TestAddColor(t *testing.T) {
	file := setup(t)

	r := runCLI(t, "-f", file, "add-color", "-c", "#ff0000")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Added #ff0000 at 1\n", r.stdout)

	r = runCLI(t, "-file", file, "add-color", "-color", "red")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "red already exists at 1\n", r.stdout)

	r = runCLI(t, "-f", file, "add-color", "-c", "red", "-force")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Added red at 2\n", r.stdout)

	assert.Equal(t, 2, loadPalette(t, file).Len())
}

func TestAddColorInvalid(t *testing.T) {
	file := setup(t)

	r := runCLI(t, "-f", file, "add-color", "-c", "invalid")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Couldn't add invalid\n", r.stdout)
	assert.Contains(t, r.stderr, "invalid color")

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err), "nothing to save")
}

func TestAddGradient(t *testing.T) {
	file := setup(t)

	r := runCLI(t, "-f", file, "add-gradient", "-start", "red", "-end", "blue", "-steps", "4", "-space", "oklch")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Added gradient red -> blue at 1..4\n", r.stdout)

	colors := loadPalette(t, file).Colors()
	require.Len(t, colors, 4)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, colors[0].Bytes())
}

func TestAddGradientBadSteps(t *testing.T) {
	file := setup(t)

	r := runCLI(t, "-f", file, "add-gradient", "-start", "red", "-end", "blue", "-steps", "0")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "at least one step")
}

func TestList(t *testing.T) {
	file := setup(t)
	p := lowtexpal.New(file)
	p.AddRGB(255, 0, 0)
	p.AddBytes([4]uint8{0, 0, 255, 0})
	require.NoError(t, p.Save())

	r := runCLI(t, "-f", file, "list")
	require.Equal(t, 0, r.code, r.stderr)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  1  #ff0000ff"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  2  #0000ff00"), lines[1])
}

func TestPreview(t *testing.T) {
	file := setup(t)
	p := lowtexpal.New(file)
	p.AddRGB(255, 0, 0)
	require.NoError(t, p.Save())

	out := filepath.Join(filepath.Dir(file), "big.png")
	r := runCLI(t, "-f", file, "preview", "-o", out, "-scale", "8")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "(8x8)")
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestConfigDefaults(t *testing.T) {
	file := setup(t)
	cfg := filepath.Join(filepath.Dir(file), "custom.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("file = \""+filepath.ToSlash(file)+"\"\nsteps = 3\nspace = \"oklab\"\n"), 0o600))

	r := runCLI(t, "-config", cfg, "add-gradient", "-start", "black", "-end", "white")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Added gradient black -> white at 1..3\n", r.stdout)

	// Flags win over the config file.
	r = runCLI(t, "-config", cfg, "add-gradient", "-start", "black", "-end", "white", "-steps", "2")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Added gradient black -> white at 4..5\n", r.stdout)
}

func TestUsageErrors(t *testing.T) {
	file := setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no file", []string{"list"}},
		{"no command", []string{"-f", file}},
		{"unknown command", []string{"-f", file, "remove"}},
		{"missing color", []string{"-f", file, "add-color"}},
		{"bad flag", []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.args...)
			assert.Equal(t, 2, r.code, r.stderr)
		})
	}
}
