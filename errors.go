package huffman

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidArgument is wrapped by errors caused by malformed input to
	// construction or encoding, such as a negative frequency.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormat is wrapped by errors caused by a structurally invalid
	// header or a tree that cannot be walked.
	ErrFormat = errors.New("invalid format")

	// ErrStreamExhausted is wrapped by errors caused by running out of
	// input bits before the pseudo-EOF symbol was reached.
	ErrStreamExhausted = errors.New("stream exhausted")
)

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// headerReadError classifies a failed read while parsing a header.  Running
// out of input mid-header is both a format error and an exhausted stream.
func headerReadError(what string, err error) error {
	if isEOF(err) {
		return fmt.Errorf("%w: truncated %s: %w", ErrFormat, what, ErrStreamExhausted)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}

var errNilChild = fmt.Errorf("%w: internal node has an absent child", ErrFormat)
