package huffman

import (
	"bytes"
	"fmt"
	"io"
	mathbits "math/bits"
	"strconv"
)

// MaxCodeSize is the length, in bits, of the longest Code.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// Bit returns the i'th bit of the sequence.
func (hc Code) Bit(i byte) bool {
	return (hc.Bits>>i)&1 != 0
}

// Path returns the bits as a string of '0' and '1' characters, first bit
// first.
func (hc Code) Path() string {
	buf := make([]byte, hc.Size)
	for i := byte(0); i < hc.Size; i++ {
		buf[i] = '0'
		if hc.Bit(i) {
			buf[i] = '1'
		}
	}
	return string(buf)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Path())
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint64) uint64 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse64(bits) >> (64 - size)
}

func codeFromPath(path []byte) Code {
	var hc Code
	for i, ch := range path {
		if ch == '1' {
			hc.Bits |= 1 << uint(i)
		}
	}
	hc.Size = byte(len(path))
	return hc
}

// CodeTable maps each Symbol of a Tree to its Code.
type CodeTable struct {
	codes   []Code
	present []bool
	minSize byte
	maxSize byte
}

// CodeTable derives the Code for every leaf of the Tree.  It fails with
// ErrInvalidArgument if any leaf lies deeper than MaxCodeSize.
//
// When the root is itself a leaf, that symbol's Code has a Size of 0; it is
// still present, and encoding it writes no bits.
//
func (t *Tree) CodeTable() (CodeTable, error) {
	numSymbols := int(t.eof) + 1
	ct := CodeTable{
		codes:   make([]Code, numSymbols),
		present: make([]bool, numSymbols),
	}

	first := true
	err := walkLeaves(t.root, nil, func(leaf *Leaf, path []byte) error {
		if len(path) > MaxCodeSize {
			return fmt.Errorf("%w: symbol %d has a %d-bit code, max %d", ErrInvalidArgument, leaf.symbol, len(path), MaxCodeSize)
		}
		hc := codeFromPath(path)
		ct.codes[leaf.symbol] = hc
		ct.present[leaf.symbol] = true
		if first {
			first = false
			ct.minSize, ct.maxSize = hc.Size, hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
		return nil
	})
	if err != nil {
		return CodeTable{}, err
	}
	return ct, nil
}

// Lookup returns the Code for a Symbol, and false if the Symbol has none.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if symbol < 0 || int(symbol) >= len(ct.codes) || !ct.present[symbol] {
		return Code{}, false
	}
	return ct.codes[symbol], true
}

// Len returns the number of Symbol slots, which is the alphabet size plus one.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// MinSize is the bit length of the shortest legal code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest legal code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol, hc := range ct.codes {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
