package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman coding tree.  It is either a *Leaf or an
// *Internal; no other implementations exist.
type Node interface {
	isNode()
}

// Leaf is a terminal Node carrying a Symbol.
type Leaf struct {
	symbol Symbol
}

// NewLeaf constructs a Leaf for the given Symbol.
func NewLeaf(symbol Symbol) *Leaf {
	assert.Assertf(symbol >= 0, "symbol %d < 0", symbol)
	return &Leaf{symbol: symbol}
}

// Symbol returns the Symbol carried by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

func (*Leaf) isNode() {}

// Internal is a non-terminal Node with exactly two children.  The left child
// is reached by a 0 bit, the right child by a 1 bit.
type Internal struct {
	left  Node
	right Node
}

// NewInternal constructs an Internal node.  Both children must be non-nil.
func NewInternal(left, right Node) *Internal {
	assert.Assertf(!isNilNode(left), "left child is nil")
	assert.Assertf(!isNilNode(right), "right child is nil")
	return &Internal{left: left, right: right}
}

// Left returns the child reached by a 0 bit.
func (in *Internal) Left() Node {
	return in.left
}

// Right returns the child reached by a 1 bit.
func (in *Internal) Right() Node {
	return in.right
}

// Child returns Right if bit is true, else Left.
func (in *Internal) Child(bit bool) Node {
	if bit {
		return in.right
	}
	return in.left
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// walkLeaves visits every leaf under n in preorder, left before right.  The
// path slice holds the '0'/'1' characters from the root and is reused between
// calls; fn must copy it if it needs to keep it.
func walkLeaves(n Node, path []byte, fn func(leaf *Leaf, path []byte) error) error {
	switch x := n.(type) {
	case *Leaf:
		if x == nil {
			return errNilChild
		}
		return fn(x, path)
	case *Internal:
		if x == nil {
			return errNilChild
		}
		if err := walkLeaves(x.left, append(path, '0'), fn); err != nil {
			return err
		}
		return walkLeaves(x.right, append(path, '1'), fn)
	default:
		return errNilChild
	}
}

func nodesEqual(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x != nil && y != nil && x.symbol == y.symbol
	case *Internal:
		y, ok := b.(*Internal)
		return ok && x != nil && y != nil && nodesEqual(x.left, y.left) && nodesEqual(x.right, y.right)
	default:
		return false
	}
}

// isNilNode reports whether n is nil, either as an interface or as a typed
// nil pointer.
func isNilNode(n Node) bool {
	switch x := n.(type) {
	case *Leaf:
		return x == nil
	case *Internal:
		return x == nil
	default:
		return true
	}
}
