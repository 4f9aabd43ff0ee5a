package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Tree is a Huffman coding tree.  It is immutable once constructed, either by
// Build from symbol frequencies or by parsing a header.
type Tree struct {
	root      Node
	eof       Symbol
	numLeaves int
	hasEOF    bool
}

// Build constructs an optimal Tree from symbol frequencies.  counts[i] is the
// number of occurrences of Symbol i; the alphabet size is len(counts), and
// Symbol(len(counts)) is the pseudo-EOF, which is always present in the tree
// with a weight of 1.
//
// Symbols with equal weight are merged in first-in, first-out order.  The
// resulting tree always has minimum weighted path length, but other trees of
// equal cost exist whenever weights are tied.
//
func Build(counts []int64) (*Tree, error) {
	if len(counts) >= int(MaxSymbol) {
		return nil, fmt.Errorf("%w: alphabet size %d leaves no room for the pseudo-EOF symbol", ErrInvalidArgument, len(counts))
	}

	var h nodeHeap
	for index, count := range counts {
		if count < 0 {
			return nil, fmt.Errorf("%w: negative frequency for symbol %d: %d", ErrInvalidArgument, index, count)
		}
		if count > 0 {
			h.Add(NewLeaf(Symbol(index)), count)
		}
	}

	eof := Symbol(len(counts))
	h.Add(NewLeaf(eof), 1)
	numLeaves := h.Len()

	for h.Len() > 1 {
		a := h.Take()
		b := h.Take()
		h.Add(NewInternal(a.node, b.node), saturatingAdd(a.weight, b.weight))
	}

	return &Tree{
		root:      h.Take().node,
		eof:       eof,
		numLeaves: numLeaves,
		hasEOF:    true,
	}, nil
}

// NewTree wraps an existing Node graph as a Tree for an alphabet of the given
// size.  Every leaf symbol must be unique and lie in [0, alphabetSize]; the
// pseudo-EOF leaf (alphabetSize) may be absent, but such a tree can only
// decode a stream until its input runs out.
//
func NewTree(root Node, alphabetSize int) (*Tree, error) {
	if alphabetSize < 0 || alphabetSize >= int(MaxSymbol) {
		return nil, fmt.Errorf("%w: alphabet size %d out of range", ErrInvalidArgument, alphabetSize)
	}
	if isNilNode(root) {
		return nil, fmt.Errorf("%w: tree has no root", ErrFormat)
	}

	eof := Symbol(alphabetSize)
	seen := make(map[Symbol]struct{})
	err := walkLeaves(root, nil, func(leaf *Leaf, _ []byte) error {
		if leaf.symbol > eof {
			return fmt.Errorf("%w: leaf symbol %d exceeds pseudo-EOF symbol %d", ErrFormat, leaf.symbol, eof)
		}
		if _, dupe := seen[leaf.symbol]; dupe {
			return fmt.Errorf("%w: duplicate leaf symbol %d", ErrFormat, leaf.symbol)
		}
		seen[leaf.symbol] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, hasEOF := seen[eof]
	return &Tree{
		root:      root,
		eof:       eof,
		numLeaves: len(seen),
		hasEOF:    hasEOF,
	}, nil
}

// Root returns the root Node.  The root is a *Leaf only when the tree holds
// nothing but a single symbol.
func (t *Tree) Root() Node {
	return t.root
}

// EOF returns the pseudo-EOF Symbol, which is equal to the alphabet size.
func (t *Tree) EOF() Symbol {
	return t.eof
}

// AlphabetSize returns the number of real symbols in the alphabet.
func (t *Tree) AlphabetSize() int {
	return int(t.eof)
}

// NumLeaves returns the number of leaves, pseudo-EOF included.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// HasEOF reports whether the pseudo-EOF symbol is one of the leaves.
func (t *Tree) HasEOF() bool {
	return t.hasEOF
}

// Equal reports whether two trees have the same shape and carry the same
// symbols at the same positions.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.eof == other.eof && nodesEqual(t.root, other.root)
}

// WeightedPathLength returns the sum of weight × depth over all leaves, using
// counts for real symbols and a weight of 1 for the pseudo-EOF.  Symbols past
// the end of counts weigh 0.
func (t *Tree) WeightedPathLength(counts []int64) int64 {
	var total int64
	_ = walkLeaves(t.root, nil, func(leaf *Leaf, path []byte) error {
		weight := int64(1)
		if leaf.symbol != t.eof {
			weight = 0
			if int(leaf.symbol) < len(counts) {
				weight = counts[leaf.symbol]
			}
		}
		total = saturatingAdd(total, saturatingMul(weight, int64(len(path))))
		return nil
	})
	return total
}

// Paths returns the root-to-leaf path of every symbol as a string of '0' and
// '1' characters, indexed by Symbol.  The slice has AlphabetSize()+1 entries.
// Symbols with no leaf map to "", as does the root when it is itself a leaf.
func (t *Tree) Paths() []string {
	out := make([]string, t.eof+1)
	_ = walkLeaves(t.root, nil, func(leaf *Leaf, path []byte) error {
		out[leaf.symbol] = string(path)
		return nil
	})
	return out
}

// String returns a short human-readable description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves, pseudo-EOF symbol %d)", t.numLeaves, t.eof)
}

var _ fmt.Stringer = (*Tree)(nil)

// Dump writes a programmer-readable debugging dump of the Tree's leaves, in
// preorder, to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tEOF() = %d\n", t.eof)
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	_ = walkLeaves(t.root, nil, func(leaf *Leaf, path []byte) error {
		fmt.Fprintf(&buf, "\tLeaf(%d) = %q\n", leaf.symbol, path)
		return nil
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Tree) DebugString() string {
	var sb strings.Builder
	_, _ = t.Dump(&sb)
	return sb.String()
}
