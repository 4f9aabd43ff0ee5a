package huffman

import (
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// MaxHeaderSymbol is the largest symbol that fits in the bit header's
// fixed-width symbol field.
const MaxHeaderSymbol = Symbol(1<<headerSymbolBits - 1)

const headerSymbolBits = 9
