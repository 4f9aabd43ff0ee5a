package huffman

import (
	"fmt"
	"io"
)

// SymbolSink receives the symbols produced by Decode.
type SymbolSink interface {
	WriteSymbol(Symbol) error
}

// SymbolSinkFunc adapts a function to the SymbolSink interface.
type SymbolSinkFunc func(Symbol) error

// WriteSymbol calls fn(symbol).
func (fn SymbolSinkFunc) WriteSymbol(symbol Symbol) error {
	return fn(symbol)
}

// ByteSink returns a SymbolSink that writes each symbol to w as one byte.
// Symbols that do not fit in a byte are rejected with ErrFormat.
func ByteSink(w io.ByteWriter) SymbolSink {
	return SymbolSinkFunc(func(symbol Symbol) error {
		if symbol < 0 || symbol > 0xff {
			return fmt.Errorf("%w: decoded symbol %d does not fit in a byte", ErrFormat, symbol)
		}
		return w.WriteByte(byte(symbol))
	})
}

// Decode reads prefix-coded symbols from r and writes them to sink until it
// reaches the pseudo-EOF symbol, which is consumed but not written.  It
// returns the number of symbols written.
//
// If the root is the pseudo-EOF leaf, Decode returns immediately without
// reading any bits.  Running out of input before the pseudo-EOF fails with
// ErrStreamExhausted.
//
func (t *Tree) Decode(r BitReader, sink SymbolSink) (int, error) {
	if isNilNode(t.root) {
		return 0, errNilChild
	}
	if leaf, ok := t.root.(*Leaf); ok && leaf.symbol != t.eof {
		return 0, fmt.Errorf("%w: single-leaf tree has no pseudo-EOF symbol", ErrFormat)
	}

	var n int
	cur := t.root
	for {
		switch x := cur.(type) {
		case *Leaf:
			if x == nil {
				return n, errNilChild
			}
			if x.symbol == t.eof {
				return n, nil
			}
			if err := sink.WriteSymbol(x.symbol); err != nil {
				return n, err
			}
			n++
			cur = t.root

		case *Internal:
			if x == nil {
				return n, errNilChild
			}
			bit, err := r.ReadBool()
			if err != nil {
				if isEOF(err) {
					return n, fmt.Errorf("%w: input ended after %d symbols, before pseudo-EOF", ErrStreamExhausted, n)
				}
				return n, fmt.Errorf("failed to read bit: %w", err)
			}
			cur = x.Child(bit)

		default:
			return n, errNilChild
		}
	}
}

// DecodeSymbols is Decode with the symbols collected into a slice.
func (t *Tree) DecodeSymbols(r BitReader) ([]Symbol, error) {
	var out []Symbol
	_, err := t.Decode(r, SymbolSinkFunc(func(symbol Symbol) error {
		out = append(out, symbol)
		return nil
	}))
	return out, err
}
