package marginx

import "sync"

const maxScratchCap = 64 * 1024

// printer bundles the per-Format mutable state: the line-buffering writer
// and the structural visitor. Pooled because every Format call needs a fresh
// pair.
type printer struct {
	w lineWriter
	v printVisitor
}

var printerPool = sync.Pool{
	New: func() any {
		return &printer{}
	},
}

func acquirePrinter() *printer {
	return printerPool.Get().(*printer)
}

func releasePrinter(p *printer) {
	if p == nil {
		return
	}
	p.w.out = nil
	p.w.pal = ColorPalette{}
	p.w.live = false
	if cap(p.w.line) > maxScratchCap {
		p.w.line = nil
	} else {
		p.w.line = p.w.line[:0]
	}
	p.v.w = nil
	p.v.quote = nil
	p.v.stack = p.v.stack[:0]
	if cap(p.v.scratch) > maxScratchCap {
		p.v.scratch = nil
	} else {
		p.v.scratch = p.v.scratch[:0]
	}
	printerPool.Put(p)
}
