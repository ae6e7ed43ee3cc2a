// Command lowtexpal manipulates low poly palette textures.
//
// Usage:
//
//	lowtexpal -f palette.png add-color -c "#ff8800"
//	lowtexpal -f palette.png add-gradient -start navy -end gold -steps 8 -space oklch
//	lowtexpal -f palette.png list
//	lowtexpal -f palette.png preview -o preview.png -scale 32
//
// Defaults for -f, -space, -steps and -force can be placed in lowtexpal.toml.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/lowtexpal"
	"github.com/gogpu/lowtexpal/internal/config"
)

const usage = `Usage: lowtexpal [-f FILE] [-config PATH] [-v] <command> [flags]

Commands:
  add-color     add a single color
  add-gradient  add a gradient of colors
  list          print the palette entries
  preview       write an enlarged copy of the texture

Global flags:
`

// errUsage marks errors caused by bad command line input.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lowtexpal", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		file    string
		cfgPath string
		verbose bool
	)
	flags.StringVar(&file, "file", "", "palette texture to manipulate")
	flags.StringVar(&file, "f", "", "shorthand for -file")
	flags.StringVar(&cfgPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.BoolVar(&verbose, "v", false, "verbose logging")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	lowtexpal.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer lowtexpal.SetLogger(nil)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "lowtexpal:", err)
		return 1
	}
	if file == "" {
		file = cfg.File
	}
	if file == "" {
		fmt.Fprintln(stderr, "lowtexpal: no palette file given (use -f)")
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	var opts []lowtexpal.Option
	if cfg.Format != "" {
		format, err := lowtexpal.ParseFormat(cfg.Format)
		if err != nil {
			fmt.Fprintln(stderr, "lowtexpal:", err)
			return 1
		}
		opts = append(opts, lowtexpal.WithFormat(format))
	}

	pal := lowtexpal.New(file, opts...)
	if err := pal.Load(); err != nil {
		fmt.Fprintln(stderr, "lowtexpal:", err)
		return 1
	}

	cmd := &command{pal: pal, cfg: cfg, stdout: stdout, stderr: stderr}
	name, rest := flags.Arg(0), flags.Args()[1:]
	switch name {
	case "add-color":
		err = cmd.addColor(rest)
	case "add-gradient":
		err = cmd.addGradient(rest)
	case "list":
		err = cmd.list(rest)
	case "preview":
		err = cmd.preview(rest)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	code := 0
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "lowtexpal:", err)
		}
		code = 1
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			code = 2
		}
	}

	if pal.Modified() {
		if err := pal.Save(); err != nil {
			fmt.Fprintln(stderr, "lowtexpal: save:", err)
			return 1
		}
	}
	return code
}
