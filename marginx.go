package marginx

import (
	"bytes"
	"fmt"
	"io"
)

// Options controls the formatting behavior. The zero value of an individual
// field is taken literally, so start from DefaultOptions (or pass nil to New)
// and override what you need.
type Options struct {
	// PrintMargin is the total target line width. Default 80.
	PrintMargin int
	// IndentSize is the number of leading spaces per nesting level. Default 2.
	IndentSize int
	// RightMargin is the slack subtracted from PrintMargin before the wrap
	// decision fires. Default 4.
	RightMargin int
	// EscapeMarkup escapes <, >, &, =, and ' in string values as \u00xx
	// sequences so the output embeds safely in markup contexts. Default true.
	EscapeMarkup bool
	// Palette selects a color palette by name; see PaletteNames. Empty (the
	// default) and "none" disable coloring.
	Palette string
}

// DefaultOptions holds the fallback formatting configuration.
var DefaultOptions = &Options{PrintMargin: 80, IndentSize: 2, RightMargin: 4, EscapeMarkup: true}

// ColorPalette holds the ANSI style sequence applied to each token class.
// The zero value disables styling entirely.
type ColorPalette struct {
	Key         string
	String      string
	Number      string
	True        string
	False       string
	Null        string
	Brackets    string
	Punctuation string
}

// Formatter renders node trees as indented text, keeping sibling elements on
// one line while they fit within the configured margin. Configuration is
// fixed at construction; a Formatter is safe for concurrent use because each
// Format call works on private state.
type Formatter struct {
	printMargin int
	indentSize  int
	rightMargin int
	quote       quoteFunc
	pal         ColorPalette
}

// New builds a Formatter from opts; nil means DefaultOptions.
func New(opts *Options) (*Formatter, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	if opts.RightMargin < 0 {
		return nil, fmt.Errorf("marginx: right margin %d must not be negative", opts.RightMargin)
	}
	if opts.PrintMargin <= opts.RightMargin {
		return nil, fmt.Errorf("marginx: print margin %d must exceed right margin %d", opts.PrintMargin, opts.RightMargin)
	}
	if opts.IndentSize < 0 {
		return nil, fmt.Errorf("marginx: indent size %d must not be negative", opts.IndentSize)
	}
	pal, err := resolvePalette(opts.Palette)
	if err != nil {
		return nil, err
	}
	quote := quoteString
	if opts.EscapeMarkup {
		quote = quoteStringMarkup
	}
	return &Formatter{
		printMargin: opts.PrintMargin,
		indentSize:  opts.IndentSize,
		rightMargin: opts.RightMargin,
		quote:       quote,
		pal:         pal,
	}, nil
}

// Format renders root to w. A nil root produces no output at all; an
// explicit null node renders the null literal. serializeNulls controls
// whether object members with null values appear in the output; array nulls
// and a null root are rendered regardless. The only failure mode is a write
// error from w, returned as-is with formatting aborted mid-document.
func (f *Formatter) Format(root *Node, w io.Writer, serializeNulls bool) error {
	if root == nil {
		return nil
	}
	p := acquirePrinter()
	defer releasePrinter(p)
	p.w.reset(w, f.pal, f.printMargin, f.rightMargin, f.indentSize)
	p.v.reset(&p.w, f.quote, serializeNulls)
	if err := walk(root, &p.v, serializeNulls); err != nil {
		return err
	}
	return p.w.finish()
}

// FormatBytes renders root into memory.
func (f *Formatter) FormatBytes(root *Node, serializeNulls bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Format(root, &buf, serializeNulls); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var defaultFormatter, _ = New(nil)

// Format renders root to w using DefaultOptions and no coloring.
func Format(root *Node, w io.Writer, serializeNulls bool) error {
	return defaultFormatter.Format(root, w, serializeNulls)
}

// FormatBytes renders root into memory using DefaultOptions and no coloring.
func FormatBytes(root *Node, serializeNulls bool) ([]byte, error) {
	return defaultFormatter.FormatBytes(root, serializeNulls)
}
