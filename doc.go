// Package huffman builds Huffman coding trees from symbol frequencies,
// serializes them as stream headers, and decodes prefix-coded bitstreams by
// walking the tree.
//
// Every tree reserves one extra leaf, the pseudo-EOF symbol, whose value is
// the alphabet size.  Real symbols occupy [0, alphabetSize), so the
// pseudo-EOF can terminate a stream in-band without colliding with data.
//
// Two header formats are supported:
//
//     Text: one (symbol, path) pair of lines per leaf, in preorder.
//
//     Bit: a self-delimiting preorder walk, 0 for an internal node and 1
//     followed by a 9-bit little-endian symbol for a leaf.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
