package marginx

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is a single named entry of an object node. A nil Value is rendered
// as the null variant.
type Member struct {
	Name  string
	Value *Node
}

// Node is one value of a tree-structured document: an object with ordered
// members, an array, a scalar, or null. The formatter never mutates nodes, so
// a tree may be shared across Format calls.
type Node struct {
	kind    Kind
	lit     string // string content, or number literal text
	boolean bool
	members []Member
	elems   []*Node
}

// Kind reports the variant of n. A nil node is the null variant.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// Null returns the null variant as an explicit node.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Bool returns a boolean node.
func Bool(v bool) *Node {
	return &Node{kind: KindBool, boolean: v}
}

// Number returns a number node holding the given literal text. The literal is
// emitted verbatim, so callers control precision and notation.
func Number(lit string) *Node {
	return &Node{kind: KindNumber, lit: lit}
}

// Int returns a number node for an integer value.
func Int(v int64) *Node {
	return Number(strconv.FormatInt(v, 10))
}

// Float returns a number node for a floating point value.
func Float(v float64) *Node {
	return Number(strconv.FormatFloat(v, 'g', -1, 64))
}

// String returns a string node. Quoting and escaping happen at format time.
func String(s string) *Node {
	return &Node{kind: KindString, lit: s}
}

// Array returns an array node with the given elements in order.
func Array(elems ...*Node) *Node {
	return &Node{kind: KindArray, elems: elems}
}

// Object returns an object node with the given members in order.
func Object(members ...Member) *Node {
	return &Node{kind: KindObject, members: members}
}

// Field builds an object member for use with Object.
func Field(name string, value *Node) Member {
	return Member{Name: name, Value: value}
}

// Append adds elements to an array node and returns it for chaining.
func (n *Node) Append(elems ...*Node) *Node {
	n.elems = append(n.elems, elems...)
	return n
}

// Set appends a member to an object node and returns it for chaining. Members
// keep insertion order; Set does not replace an existing name.
func (n *Node) Set(name string, value *Node) *Node {
	n.members = append(n.members, Member{Name: name, Value: value})
	return n
}

// Len reports the number of members or elements of a container node, and 0
// for scalars and null.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindArray:
		return len(n.elems)
	case KindObject:
		return len(n.members)
	default:
		return 0
	}
}

// FromValue converts a decoded generic value into a node tree. It accepts the
// types produced by encoding/json when decoding into any: map[string]any,
// []any, string, bool, nil, json.Number, and float64. Object keys are sorted
// so that trees built from unordered Go maps format deterministically.
func FromValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return Number(x.String()), nil
	case float64:
		return Float(x), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case []any:
		arr := &Node{kind: KindArray, elems: make([]*Node, 0, len(x))}
		for _, e := range x {
			child, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			arr.elems = append(arr.elems, child)
		}
		return arr, nil
	case map[string]any:
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)
		obj := &Node{kind: KindObject, members: make([]Member, 0, len(x))}
		for _, name := range names {
			child, err := FromValue(x[name])
			if err != nil {
				return nil, err
			}
			obj.members = append(obj.members, Member{Name: name, Value: child})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("marginx: unsupported value type %T", v)
	}
}
