package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"pkt.systems/marginx"
)

type config struct {
	margin      int
	indent      int
	rightMargin int
	omitNulls   bool
	compact     bool
	rawMarkup   bool
	palette     string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.margin, "margin", 80, "target line width")
	flag.IntVar(&cfg.indent, "indent", 2, "spaces per nesting level")
	flag.IntVar(&cfg.rightMargin, "right-margin", 4, "slack reserved before wrapping")
	flag.BoolVar(&cfg.omitNulls, "omit-nulls", false, "drop object members whose value is null")
	flag.BoolVar(&cfg.compact, "compact", false, "emit one compact document per line instead of wrapped output")
	flag.BoolVar(&cfg.rawMarkup, "raw-markup", false, "keep <, >, &, =, and ' unescaped in strings")
	flag.StringVar(&cfg.palette, "palette", "default", "color palette (see --list-palettes)")
	noColor := flag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	listPalettes := flag.Bool("list-palettes", false, "print available palette names and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listPalettes {
		for _, name := range marginx.PaletteNames() {
			fmt.Println(name)
		}
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	color := !*noColor && !cfg.compact &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	if err := run(os.Stdout, paths, cfg, color); err != nil {
		fmt.Fprintf(os.Stderr, "marginx: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, paths []string, cfg config, color bool) error {
	opts := marginx.Options{
		PrintMargin:  cfg.margin,
		IndentSize:   cfg.indent,
		RightMargin:  cfg.rightMargin,
		EscapeMarkup: !cfg.rawMarkup,
	}
	if color {
		opts.Palette = cfg.palette
	}
	f, err := marginx.New(&opts)
	if err != nil {
		return err
	}
	for _, path := range paths {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		root, err := decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if cfg.compact {
			out, err := f.Compact(root, !cfg.omitNulls)
			if err != nil {
				return err
			}
			if _, err := w.Write(out); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := f.Format(root, w, !cfg.omitNulls); err != nil {
			return err
		}
	}
	return nil
}

func decode(data []byte) (*marginx.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep number literals verbatim
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return marginx.FromValue(v)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
