package marginx

import (
	"bytes"
	"errors"
	"testing"
)

func newTestWriter(buf *bytes.Buffer, printMargin, rightMargin, indent int) *lineWriter {
	var w lineWriter
	w.reset(buf, ColorPalette{}, printMargin, rightMargin, indent)
	return &w
}

func TestLineWriter_AppendsDoNotFlush(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 10, 4, 2)
	w.appendKey("key")
	w.appendValueString("", "averylongvaluetoken")
	if buf.Len() != 0 {
		t.Fatalf("append operations must not flush, wrote %q", buf.Bytes())
	}
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.String() != "\"key\"averylongvaluetoken\n" {
		t.Fatalf("unexpected flushed line: %q", buf.String())
	}
}

func TestLineWriter_SeparatorTriggersFlush(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 10, 4, 2)
	w.appendValueString("", "abcdefgh") // width 8 > margin 6, but no check yet
	if buf.Len() != 0 {
		t.Fatalf("value append must not flush, wrote %q", buf.Bytes())
	}
	if err := w.elementSeparator(); err != nil {
		t.Fatalf("elementSeparator failed: %v", err)
	}
	if buf.String() != "abcdefgh,\n" {
		t.Fatalf("unexpected flush: %q", buf.String())
	}
	// Nothing pending: finish is a no-op.
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.String() != "abcdefgh,\n" {
		t.Fatalf("finish with no pending line wrote output: %q", buf.String())
	}
}

func TestLineWriter_NewLineCarriesIndentation(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 10, 4, 2)
	if err := w.beginContainer('['); err != nil {
		t.Fatalf("beginContainer failed: %v", err)
	}
	w.appendValueString("", "123456")
	if err := w.elementSeparator(); err != nil { // width 8 > 6, flush
		t.Fatalf("elementSeparator failed: %v", err)
	}
	w.appendValueString("", "7")
	w.endContainer(']')
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.String() != "[123456,\n  7]\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestLineWriter_RootLineIsUnindented(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 80, 4, 2)
	if err := w.beginContainer('{'); err != nil {
		t.Fatalf("beginContainer failed: %v", err)
	}
	w.appendKey("a")
	if err := w.fieldSeparator(); err != nil {
		t.Fatalf("fieldSeparator failed: %v", err)
	}
	w.appendValueString("", "1")
	w.endContainer('}')
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	// The opener lands on the line created at reset, before any level
	// increment, so it sits at column zero.
	if buf.String() != "{\"a\":1}\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestLineWriter_ZeroIndentCollapsesLeadingWhitespace(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 10, 4, 0)
	if err := w.beginContainer('['); err != nil {
		t.Fatalf("beginContainer failed: %v", err)
	}
	w.appendValueString("", "123456")
	if err := w.elementSeparator(); err != nil {
		t.Fatalf("elementSeparator failed: %v", err)
	}
	w.appendValueString("", "7")
	w.endContainer(']')
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.String() != "[123456,\n7]\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestLineWriter_EndContainerDoesNotFlush(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 10, 4, 2)
	if err := w.beginContainer('['); err != nil {
		t.Fatalf("beginContainer failed: %v", err)
	}
	w.appendValueString("", "abcdefghij") // well past the margin
	w.endContainer(']')
	if buf.Len() != 0 {
		t.Fatalf("endContainer must never flush, wrote %q", buf.Bytes())
	}
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.String() != "[abcdefghij]\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestLineWriter_WidthCountsRunesNotBytes(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, 10, 4, 2)
	w.appendValueString("", "ééé")               // 6 bytes, 3 runes
	if err := w.elementSeparator(); err != nil { // width 4 <= 6, no flush
		t.Fatalf("elementSeparator failed: %v", err)
	}
	w.appendValueString("", "x")
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if buf.String() != "ééé,x\n" {
		t.Fatalf("multi-byte runes wrapped early: %q", buf.String())
	}
}

func TestLineWriter_StyledWidthExcludesEscapes(t *testing.T) {
	var plain, colored bytes.Buffer
	pal := colorPaletteFromAnsi(paletteRegistry["classic"])

	w := newTestWriter(&plain, 10, 4, 2)
	w.appendValueString("", "12345")
	if err := w.elementSeparator(); err != nil {
		t.Fatalf("elementSeparator failed: %v", err)
	}
	if err := w.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	var cw lineWriter
	cw.reset(&colored, pal, 10, 4, 2)
	cw.appendValueString(pal.Number, "12345")
	if err := cw.elementSeparator(); err != nil {
		t.Fatalf("elementSeparator failed: %v", err)
	}
	if err := cw.finish(); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	if stripANSI(colored.String()) != plain.String() {
		t.Fatalf("styled output wraps differently\nplain:    %q\nstripped: %q", plain.String(), stripANSI(colored.String()))
	}
}

type failingWriter struct {
	err error
}

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func TestLineWriter_SinkErrorSurfaces(t *testing.T) {
	sinkErr := errors.New("sink closed")
	var w lineWriter
	w.reset(&failingWriter{err: sinkErr}, ColorPalette{}, 10, 4, 2)
	w.appendValueString("", "abcdefgh")
	if err := w.elementSeparator(); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestFormat_SinkErrorAbortsFormat(t *testing.T) {
	sinkErr := errors.New("sink closed")
	f, err := New(&Options{PrintMargin: 10, IndentSize: 2, RightMargin: 4, EscapeMarkup: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := f.Format(sampleTree(), &failingWriter{err: sinkErr}, true); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
