package marginx

import (
	"io"
	"unicode/utf8"

	"pkt.systems/marginx/internal/ansi"
)

// lineWriter accumulates tokens into the line currently being built and
// flushes it to the sink once the visible width crosses the wrap margin. The
// flush decision is evaluated only after a field or element separator and
// before a container opener, so lines break after punctuation, never inside a
// token. A token longer than the margin is emitted whole; the margin bounds
// accumulation, not token length.
//
// ANSI style sequences are stored in the buffer but never counted toward the
// width, so colored and plain output wrap identically.
type lineWriter struct {
	out    io.Writer
	pal    ColorPalette
	margin int // printMargin minus rightMargin
	indent int
	level  int
	line   []byte // backing buffer, reused across lines
	width  int    // visible width of the live line, in runes
	live   bool
}

func (w *lineWriter) reset(out io.Writer, pal ColorPalette, printMargin, rightMargin, indentSize int) {
	w.out = out
	w.pal = pal
	w.margin = printMargin - rightMargin
	w.indent = indentSize
	w.level = 0
	w.line = w.line[:0]
	w.width = 0
	// The initial line is opened here, before any container has raised the
	// level, so the root token starts at column zero. ensureLine only fires
	// after a flush.
	w.live = true
}

// ensureLine lazily opens a new line pre-filled with the indentation of the
// current nesting level.
func (w *lineWriter) ensureLine() {
	if w.live {
		return
	}
	w.line = w.line[:0]
	for i := 0; i < w.level*w.indent; i++ {
		w.line = append(w.line, ' ')
	}
	w.width = w.level * w.indent
	w.live = true
}

func (w *lineWriter) appendStyled(style string, text string) {
	w.ensureLine()
	if style != "" {
		w.line = append(w.line, style...)
		w.line = append(w.line, text...)
		w.line = append(w.line, ansi.Reset...)
	} else {
		w.line = append(w.line, text...)
	}
	w.width += utf8.RuneCountInString(text)
}

func (w *lineWriter) appendStyledByte(style string, b byte) {
	w.ensureLine()
	if style != "" {
		w.line = append(w.line, style...)
		w.line = append(w.line, b)
		w.line = append(w.line, ansi.Reset...)
	} else {
		w.line = append(w.line, b)
	}
	w.width++
}

// appendKey appends the quoted member name. Names are emitted verbatim
// between the quotes.
func (w *lineWriter) appendKey(name string) {
	w.ensureLine()
	if w.pal.Key != "" {
		w.line = append(w.line, w.pal.Key...)
	}
	w.line = append(w.line, '"')
	w.line = append(w.line, name...)
	w.line = append(w.line, '"')
	if w.pal.Key != "" {
		w.line = append(w.line, ansi.Reset...)
	}
	w.width += utf8.RuneCountInString(name) + 2
}

// appendValue appends an already-rendered value token.
func (w *lineWriter) appendValue(style string, token []byte) {
	w.ensureLine()
	if style != "" {
		w.line = append(w.line, style...)
		w.line = append(w.line, token...)
		w.line = append(w.line, ansi.Reset...)
	} else {
		w.line = append(w.line, token...)
	}
	w.width += utf8.RuneCount(token)
}

func (w *lineWriter) appendValueString(style string, token string) {
	w.appendStyled(style, token)
}

func (w *lineWriter) fieldSeparator() error {
	w.appendStyledByte(w.pal.Punctuation, ':')
	return w.breakLineIfNeeded()
}

func (w *lineWriter) elementSeparator() error {
	w.appendStyledByte(w.pal.Punctuation, ',')
	return w.breakLineIfNeeded()
}

// beginContainer raises the nesting level before the wrap check so that a
// break lands the opener on a line indented for the new level.
func (w *lineWriter) beginContainer(open byte) error {
	w.level++
	if err := w.breakLineIfNeeded(); err != nil {
		return err
	}
	w.appendStyledByte(w.pal.Brackets, open)
	return nil
}

// endContainer never forces a flush; a closer may share the line with
// trailing content.
func (w *lineWriter) endContainer(close byte) {
	w.appendStyledByte(w.pal.Brackets, close)
	w.level--
}

func (w *lineWriter) breakLineIfNeeded() error {
	if w.width > w.margin {
		return w.flushLine()
	}
	return nil
}

func (w *lineWriter) flushLine() error {
	if !w.live {
		return nil
	}
	w.line = append(w.line, '\n')
	_, err := w.out.Write(w.line)
	w.live = false
	w.width = 0
	return err
}

// finish flushes the pending line, if any. Called exactly once after the
// traversal completes.
func (w *lineWriter) finish() error {
	return w.flushLine()
}
