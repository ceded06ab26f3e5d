package marginx

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"pkt.systems/jpact"
)

// Compact renders root with no line structure or inter-token whitespace,
// the flat equivalent of what Format produces. Coloring is never applied.
func (f *Formatter) Compact(root *Node, serializeNulls bool) ([]byte, error) {
	if root == nil {
		return nil, nil
	}
	plain := *f
	plain.pal = ColorPalette{}
	var pretty bytes.Buffer
	if err := plain.Format(root, &pretty, serializeNulls); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := jpact.CompactWriter(&out, &pretty, 0); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Compact renders root compactly using DefaultOptions.
func Compact(root *Node, serializeNulls bool) ([]byte, error) {
	return defaultFormatter.Compact(root, serializeNulls)
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}

// CompactTo compacts a stream of JSON documents from r, emitting one
// compacted document per line to w. The input may hold any number of
// whitespace-separated documents, such as the concatenated output of
// repeated Format calls.
func CompactTo(w io.Writer, r io.Reader) error {
	doc := docReader{r: bufio.NewReader(r)}
	for {
		if err := doc.start(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := jpact.CompactWriter(w, &doc, 0); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		doc.reset()
	}
}

// docReader exposes exactly one JSON document from the underlying stream as
// an io.Reader, so the compact writer stops at the document boundary. It
// tracks just enough lexical state to find that boundary: bracket depth
// outside strings, and escape state inside them.
type docReader struct {
	r       *bufio.Reader
	started bool
	done    bool
	mode    docMode
	depth   int
	inStr   bool
	escape  bool
	pending byte
	hasPend bool
}

type docMode int

const (
	docScalar docMode = iota
	docString
	docStruct
)

func (d *docReader) reset() {
	d.started = false
	d.done = false
	d.mode = docScalar
	d.depth = 0
	d.inStr = false
	d.escape = false
	d.pending = 0
	d.hasPend = false
}

// start skips leading whitespace and classifies the next document. Returns
// io.EOF when the stream holds no further document.
func (d *docReader) start() error {
	if d.started {
		return nil
	}
	b, err := d.readNonSpace()
	if err != nil {
		return err
	}
	d.started = true
	d.pending = b
	d.hasPend = true
	switch b {
	case '{', '[':
		d.mode = docStruct
		d.depth = 1
	case '"':
		d.mode = docString
		d.inStr = true
	default:
		d.mode = docScalar
	}
	return nil
}

func (d *docReader) readNonSpace() (byte, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b > ' ' {
			return b, nil
		}
	}
}

func (d *docReader) Read(p []byte) (int, error) {
	if d.done {
		return 0, io.EOF
	}
	if !d.started {
		if err := d.start(); err != nil {
			return 0, err
		}
	}
	n := 0
	for n < len(p) {
		b, err := d.nextByte()
		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (d *docReader) nextByte() (byte, error) {
	if d.done {
		return 0, io.EOF
	}
	if d.hasPend {
		d.hasPend = false
		return d.pending, nil
	}
	switch d.mode {
	case docString:
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if d.escape {
			d.escape = false
			return b, nil
		}
		switch b {
		case '\\':
			d.escape = true
		case '"':
			d.done = true
		}
		return b, nil
	case docStruct:
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if d.inStr {
			if d.escape {
				d.escape = false
				return b, nil
			}
			switch b {
			case '\\':
				d.escape = true
			case '"':
				d.inStr = false
			}
			return b, nil
		}
		switch b {
		case '"':
			d.inStr = true
		case '{', '[':
			d.depth++
		case '}', ']':
			d.depth--
			if d.depth == 0 {
				d.done = true
			}
		}
		return b, nil
	default:
		b, err := d.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.done = true
			}
			return 0, err
		}
		if isDocTerminator(b) {
			_ = d.r.UnreadByte()
			d.done = true
			return 0, io.EOF
		}
		return b, nil
	}
}

func isDocTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']'
}
