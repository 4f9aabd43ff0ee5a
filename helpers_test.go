package huffman

import (
	"io"
	"math/rand"
	"sort"
	"strings"
)

// bitBuffer is an in-memory BitReader and BitWriter.
type bitBuffer struct {
	bits []bool
	pos  int
}

func bitsFromString(str string) *bitBuffer {
	b := &bitBuffer{}
	for _, ch := range str {
		b.bits = append(b.bits, ch == '1')
	}
	return b
}

func (b *bitBuffer) WriteBool(bit bool) error {
	b.bits = append(b.bits, bit)
	return nil
}

func (b *bitBuffer) ReadBool() (bool, error) {
	if b.pos >= len(b.bits) {
		return false, io.EOF
	}
	bit := b.bits[b.pos]
	b.pos++
	return bit, nil
}

func (b *bitBuffer) Remaining() int {
	return len(b.bits) - b.pos
}

func (b *bitBuffer) String() string {
	var sb strings.Builder
	for _, bit := range b.bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// failingReader is a BitReader that must never be read.
type failingReader struct {
	reads int
}

func (r *failingReader) ReadBool() (bool, error) {
	r.reads++
	return false, io.ErrClosedPipe
}

func randomCounts(rng *rand.Rand, alphabetSize int) []int64 {
	counts := make([]int64, alphabetSize)
	for i := range counts {
		if rng.Intn(3) == 0 {
			continue
		}
		counts[i] = rng.Int63n(1000) + 1
	}
	return counts
}

// optimalCost computes the minimum weighted path length for a multiset of
// leaf weights, as the sum of all merged weights.
func optimalCost(weights []int64) int64 {
	ws := append([]int64(nil), weights...)
	var cost int64
	for len(ws) > 1 {
		sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
		sum := ws[0] + ws[1]
		cost += sum
		ws = append([]int64{sum}, ws[2:]...)
	}
	return cost
}

func leafWeights(counts []int64) []int64 {
	out := []int64{1}
	for _, c := range counts {
		if c > 0 {
			out = append(out, c)
		}
	}
	return out
}

func presentSymbols(counts []int64) []Symbol {
	var out []Symbol
	for i, c := range counts {
		if c > 0 {
			out = append(out, Symbol(i))
		}
	}
	return out
}

func symbolsEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
