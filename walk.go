package marginx

// treeVisitor receives depth-first traversal events over a node tree. The
// first argument of the member callbacks is a hint from the driver; visitors
// that need authoritative first-member state must track it themselves.
type treeVisitor interface {
	startArray(arr *Node) error
	visitArrayPrimitive(member *Node, first bool) error
	visitArrayContainer(member *Node, first bool) error
	visitNullArrayMember(first bool) error
	endArray(arr *Node) error

	startObject(obj *Node) error
	visitObjectPrimitive(name string, member *Node, first bool) error
	visitObjectContainer(name string, member *Node, first bool) error
	visitNullObjectMember(name string, first bool) error
	endObject(obj *Node) error

	visitPrimitive(p *Node) error
	visitNull() error
}

// walk drives a depth-first traversal of root, invoking v exactly once per
// node in tree order. Null object members are skipped entirely when
// serializeNulls is false; null array members are always visited, since
// dropping them would shift element positions.
func walk(root *Node, v treeVisitor, serializeNulls bool) error {
	switch root.Kind() {
	case KindNull:
		return v.visitNull()
	case KindArray:
		if err := v.startArray(root); err != nil {
			return err
		}
		first := true
		for _, child := range root.elems {
			if err := walkArrayMember(child, v, first, serializeNulls); err != nil {
				return err
			}
			first = false
		}
		return v.endArray(root)
	case KindObject:
		if err := v.startObject(root); err != nil {
			return err
		}
		first := true
		for _, m := range root.members {
			visited, err := walkObjectMember(m, v, first, serializeNulls)
			if err != nil {
				return err
			}
			if visited {
				first = false
			}
		}
		return v.endObject(root)
	default:
		return v.visitPrimitive(root)
	}
}

func walkArrayMember(child *Node, v treeVisitor, first, serializeNulls bool) error {
	switch child.Kind() {
	case KindNull:
		if err := v.visitNullArrayMember(first); err != nil {
			return err
		}
		return v.visitNull()
	case KindArray, KindObject:
		if err := v.visitArrayContainer(child, first); err != nil {
			return err
		}
		return walk(child, v, serializeNulls)
	default:
		return v.visitArrayPrimitive(child, first)
	}
}

// walkObjectMember reports whether the member was visited at all, so the
// driver's first-member hint stays accurate across skipped nulls.
func walkObjectMember(m Member, v treeVisitor, first, serializeNulls bool) (bool, error) {
	switch m.Value.Kind() {
	case KindNull:
		if !serializeNulls {
			return false, nil
		}
		if err := v.visitNullObjectMember(m.Name, first); err != nil {
			return false, err
		}
		return true, v.visitNull()
	case KindArray, KindObject:
		if err := v.visitObjectContainer(m.Name, m.Value, first); err != nil {
			return false, err
		}
		return true, walk(m.Value, v, serializeNulls)
	default:
		return true, v.visitObjectPrimitive(m.Name, m.Value, first)
	}
}
