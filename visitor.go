package marginx

// printVisitor translates traversal callbacks into writer operations. It
// recomputes first-member state on its own stack instead of trusting the
// driver's hint: a first=true entry is pushed on every container entry and
// popped on exit, so sibling containers at the same depth can never see
// stale state. One stack serves both container kinds because member
// callbacks always arrive while their container is the innermost open one.
type printVisitor struct {
	w              *lineWriter
	quote          quoteFunc
	serializeNulls bool
	stack          []bool // first-member flag per open container
	scratch        []byte
}

func (v *printVisitor) reset(w *lineWriter, quote quoteFunc, serializeNulls bool) {
	v.w = w
	v.quote = quote
	v.serializeNulls = serializeNulls
	v.stack = v.stack[:0]
}

func (v *printVisitor) push() {
	v.stack = append(v.stack, true)
}

func (v *printVisitor) pop() {
	if n := len(v.stack); n > 0 {
		v.stack = v.stack[:n-1]
	}
}

// separator emits an element separator unless the current member is the
// first of the innermost open container.
func (v *printVisitor) separator() error {
	if n := len(v.stack); n > 0 && v.stack[n-1] {
		v.stack[n-1] = false
		return nil
	}
	return v.w.elementSeparator()
}

func (v *printVisitor) startArray(*Node) error {
	v.push()
	return v.w.beginContainer('[')
}

func (v *printVisitor) visitArrayPrimitive(member *Node, _ bool) error {
	if err := v.separator(); err != nil {
		return err
	}
	v.emitValue(member)
	return nil
}

// visitArrayContainer handles only the separator; the member's own start
// callback follows from the driver.
func (v *printVisitor) visitArrayContainer(*Node, bool) error {
	return v.separator()
}

func (v *printVisitor) visitNullArrayMember(bool) error {
	return v.separator()
}

func (v *printVisitor) endArray(*Node) error {
	v.pop()
	v.w.endContainer(']')
	return nil
}

func (v *printVisitor) startObject(*Node) error {
	v.push()
	return v.w.beginContainer('{')
}

func (v *printVisitor) visitObjectPrimitive(name string, member *Node, _ bool) error {
	if err := v.separator(); err != nil {
		return err
	}
	v.w.appendKey(name)
	if err := v.w.fieldSeparator(); err != nil {
		return err
	}
	v.emitValue(member)
	return nil
}

func (v *printVisitor) visitObjectContainer(name string, _ *Node, _ bool) error {
	if err := v.separator(); err != nil {
		return err
	}
	v.w.appendKey(name)
	return v.w.fieldSeparator()
}

// visitNullObjectMember guards on serializeNulls even though the driver
// already gates skipped members; the two are expected to agree.
func (v *printVisitor) visitNullObjectMember(name string, _ bool) error {
	if !v.serializeNulls {
		return nil
	}
	if err := v.separator(); err != nil {
		return err
	}
	v.w.appendKey(name)
	return v.w.fieldSeparator()
}

func (v *printVisitor) endObject(*Node) error {
	v.pop()
	v.w.endContainer('}')
	return nil
}

func (v *printVisitor) visitPrimitive(p *Node) error {
	v.emitValue(p)
	return nil
}

func (v *printVisitor) visitNull() error {
	v.w.appendValueString(v.w.pal.Null, "null")
	return nil
}

func (v *printVisitor) emitValue(n *Node) {
	switch n.Kind() {
	case KindString:
		v.scratch = v.quote(v.scratch[:0], n.lit)
		v.w.appendValue(v.w.pal.String, v.scratch)
	case KindNumber:
		v.w.appendValueString(v.w.pal.Number, n.lit)
	case KindBool:
		if n.boolean {
			v.w.appendValueString(v.w.pal.True, "true")
		} else {
			v.w.appendValueString(v.w.pal.False, "false")
		}
	case KindNull:
		v.w.appendValueString(v.w.pal.Null, "null")
	}
}
