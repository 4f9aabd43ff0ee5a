package huffman

import (
	"github.com/icza/bitio"
)

// BitReader is the source of bits consumed by ParseBitHeader and Decode.
// ReadBool returns io.EOF once the input is exhausted.
//
// *bitio.Reader implements BitReader.
//
type BitReader interface {
	ReadBool() (bool, error)
}

// BitWriter is the sink of bits produced by WriteBitHeader and Encode.
//
// *bitio.Writer implements BitWriter.
//
type BitWriter interface {
	WriteBool(bool) error
}

// multiBitWriter is implemented by writers that can accept several bits at
// once, most significant bit first.
type multiBitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader      = (*bitio.Reader)(nil)
	_ BitWriter      = (*bitio.Writer)(nil)
	_ multiBitWriter = (*bitio.Writer)(nil)
)

// writeCode writes the bits of hc, first bit first.
func writeCode(w BitWriter, hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if mw, ok := w.(multiBitWriter); ok {
		return mw.WriteBits(hc.Reversed().Bits, hc.Size)
	}
	for i := byte(0); i < hc.Size; i++ {
		if err := w.WriteBool(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}
