package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// WriteBitHeader serializes the Tree to w as a self-delimiting preorder walk.
// Each internal node is written as a 0 bit followed by its left and right
// subtrees; each leaf is written as a 1 bit followed by its symbol in
// headerSymbolBits bits, least significant bit first.
//
// Symbols above MaxHeaderSymbol cannot be represented and are rejected with
// ErrInvalidArgument before anything is written.
//
func (t *Tree) WriteBitHeader(w BitWriter) error {
	err := walkLeaves(t.root, nil, func(leaf *Leaf, _ []byte) error {
		if leaf.symbol > MaxHeaderSymbol {
			return fmt.Errorf("%w: symbol %d exceeds header max %d", ErrInvalidArgument, leaf.symbol, MaxHeaderSymbol)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return writeBitNode(w, t.root)
}

func writeBitNode(w BitWriter, n Node) error {
	switch x := n.(type) {
	case *Leaf:
		if x == nil {
			return errNilChild
		}
		if err := w.WriteBool(true); err != nil {
			return err
		}
		for i := 0; i < headerSymbolBits; i++ {
			if err := w.WriteBool((x.symbol>>i)&1 != 0); err != nil {
				return err
			}
		}
		return nil
	case *Internal:
		if x == nil {
			return errNilChild
		}
		if err := w.WriteBool(false); err != nil {
			return err
		}
		if err := writeBitNode(w, x.left); err != nil {
			return err
		}
		return writeBitNode(w, x.right)
	default:
		return errNilChild
	}
}

// ParseBitHeader reads a Tree written by WriteBitHeader.  The header is
// self-delimiting, so r is left positioned at the first bit after it.
func ParseBitHeader(r BitReader, alphabetSize int) (*Tree, error) {
	p := bitHeaderParser{r: r}
	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	return NewTree(root, alphabetSize)
}

type bitHeaderParser struct {
	r           BitReader
	numInternal int
}

func (p *bitHeaderParser) parseNode() (Node, error) {
	isLeaf, err := p.r.ReadBool()
	if err != nil {
		return nil, headerReadError("tree header", err)
	}

	if isLeaf {
		var symbol Symbol
		for i := 0; i < headerSymbolBits; i++ {
			bit, err := p.r.ReadBool()
			if err != nil {
				return nil, headerReadError("leaf symbol", err)
			}
			if bit {
				symbol |= 1 << i
			}
		}
		return NewLeaf(symbol), nil
	}

	// A full tree over distinct 9-bit symbols has at most MaxHeaderSymbol
	// internal nodes.
	p.numInternal++
	if p.numInternal > int(MaxHeaderSymbol) {
		return nil, fmt.Errorf("%w: tree header has more than %d internal nodes", ErrFormat, MaxHeaderSymbol)
	}

	left, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	right, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	return NewInternal(left, right), nil
}

// MarshalHeader returns the bit header for this Tree, padded with zero bits
// to a whole number of bytes.
func (t *Tree) MarshalHeader() ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := t.WriteBitHeader(w); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalHeader parses a bit header produced by MarshalHeader.  Trailing
// padding is ignored.
func UnmarshalHeader(data []byte, alphabetSize int) (*Tree, error) {
	return ParseBitHeader(bitio.NewReader(bytes.NewReader(data)), alphabetSize)
}
