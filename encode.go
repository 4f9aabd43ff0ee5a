package huffman

import (
	"fmt"
)

// Encode writes the Code of each symbol to w, followed by the Code of the
// pseudo-EOF symbol.  The caller is responsible for flushing w afterward.
//
// Encode fails with ErrInvalidArgument if a symbol has no leaf in the tree,
// if the symbols include the pseudo-EOF itself, or if the tree has no
// pseudo-EOF leaf.
//
func (t *Tree) Encode(w BitWriter, symbols []Symbol) error {
	ct, err := t.CodeTable()
	if err != nil {
		return err
	}
	eofCode, ok := ct.Lookup(t.eof)
	if !ok {
		return fmt.Errorf("%w: tree has no leaf for pseudo-EOF symbol %d", ErrInvalidArgument, t.eof)
	}

	for index, symbol := range symbols {
		if symbol == t.eof {
			return fmt.Errorf("%w: pseudo-EOF symbol %d at index %d", ErrInvalidArgument, symbol, index)
		}
		hc, ok := ct.Lookup(symbol)
		if !ok {
			return fmt.Errorf("%w: symbol %d at index %d has no code", ErrInvalidArgument, symbol, index)
		}
		if err := writeCode(w, hc); err != nil {
			return fmt.Errorf("failed to write code for symbol %d: %w", symbol, err)
		}
	}

	if err := writeCode(w, eofCode); err != nil {
		return fmt.Errorf("failed to write pseudo-EOF code: %w", err)
	}
	return nil
}

// EncodeBytes is Encode for byte-valued symbols.
func (t *Tree) EncodeBytes(w BitWriter, data []byte) error {
	symbols := make([]Symbol, len(data))
	for index, b := range data {
		symbols[index] = Symbol(b)
	}
	return t.Encode(w, symbols)
}
