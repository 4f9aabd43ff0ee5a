// Command huffpack compresses and decompresses files with a Huffman code.
//
//     huffpack encode [-header bits|text] INPUT OUTPUT
//     huffpack decode [-header bits|text] INPUT OUTPUT
//
// The output of encode is a tree header followed by the coded bytes and the
// pseudo-EOF code, padded with zero bits to a whole byte.  With -header=bits
// the header is the compact preorder bit format; with -header=text it is the
// counted line-oriented format.  decode must be given the same -header.
//
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"

	huffman "github.com/chronos-tachyon/huffmantree"
	"github.com/chronos-tachyon/huffmantree/internal/logger"
)

const byteAlphabetSize = 256

func main() {
	log := logger.New(os.Stderr, "huffpack: ")
	if err := run(os.Args[1:], log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, log logger.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: huffpack encode|decode [-header bits|text] INPUT OUTPUT")
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	headerFlag := fs.String("header", "bits", "tree header format: bits or text")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%s: expected INPUT and OUTPUT, got %d arguments", args[0], fs.NArg())
	}
	format, err := parseHeaderFormat(*headerFlag)
	if err != nil {
		return err
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	switch args[0] {
	case "encode":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return err
		}
		n, err := writeFile(outputPath, func(w io.Writer) error {
			return encode(w, data, format)
		})
		if err != nil {
			return err
		}
		log.Infof("encoded %s (%d bytes) to %s (%d bytes)", inputPath, len(data), outputPath, n)
		return nil

	case "decode":
		in, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer in.Close()
		n, err := writeFile(outputPath, func(w io.Writer) error {
			return decode(w, in, format)
		})
		if err != nil {
			return err
		}
		log.Infof("decoded %s to %s (%d bytes)", inputPath, outputPath, n)
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type headerFormat byte

const (
	bitHeader headerFormat = iota
	textHeader
)

func parseHeaderFormat(str string) (headerFormat, error) {
	switch str {
	case "bits":
		return bitHeader, nil
	case "text":
		return textHeader, nil
	default:
		return 0, fmt.Errorf("unknown header format %q", str)
	}
}

// countBytes returns the number of occurrences of each byte value in data.
func countBytes(data []byte) []int64 {
	counts := make([]int64, byteAlphabetSize)
	for _, b := range data {
		counts[b]++
	}
	return counts
}

func encode(w io.Writer, data []byte, format headerFormat) error {
	tree, err := huffman.Build(countBytes(data))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if format == textHeader {
		if err := tree.WriteCountedTextHeader(bw); err != nil {
			return err
		}
	}

	out := bitio.NewWriter(bw)
	if format == bitHeader {
		if err := tree.WriteBitHeader(out); err != nil {
			return err
		}
	}
	if err := tree.EncodeBytes(out, data); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

func decode(w io.Writer, r io.Reader, format headerFormat) error {
	br := bufio.NewReader(r)

	var tree *huffman.Tree
	var err error
	if format == textHeader {
		tree, err = huffman.ParseCountedTextHeader(br, byteAlphabetSize)
		if err != nil {
			return err
		}
	}

	in := bitio.NewReader(br)
	if format == bitHeader {
		tree, err = huffman.ParseBitHeader(in, byteAlphabetSize)
		if err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := tree.Decode(in, huffman.ByteSink(bw)); err != nil {
		return err
	}
	return bw.Flush()
}

// writeFile creates path, fills it with fn, and returns the number of bytes
// written.  If fn or the final close fails, the partial file is removed.
func writeFile(path string, fn func(io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	if err := fn(cw); err != nil {
		return cw.n, errors.Join(err, f.Close(), os.Remove(path))
	}
	if err := f.Close(); err != nil {
		return cw.n, errors.Join(err, os.Remove(path))
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
