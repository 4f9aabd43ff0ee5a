package huffman

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TextRecord is one leaf of a text header: a symbol and its root-to-leaf path
// as a string of '0' (left) and '1' (right) characters.
type TextRecord struct {
	Symbol Symbol
	Path   string
}

// TextRecords returns one TextRecord per leaf, in preorder.
func (t *Tree) TextRecords() []TextRecord {
	out := make([]TextRecord, 0, t.numLeaves)
	_ = walkLeaves(t.root, nil, func(leaf *Leaf, path []byte) error {
		out = append(out, TextRecord{Symbol: leaf.symbol, Path: string(path)})
		return nil
	})
	return out
}

// WriteTextHeader serializes the Tree to w as text.  Each leaf, in preorder,
// becomes two lines: the decimal symbol, then its path.  The header carries
// no record count, so it must be the last thing in its stream; see
// WriteCountedTextHeader for a variant that can be followed by other data.
//
func (t *Tree) WriteTextHeader(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rec := range t.TextRecords() {
		fmt.Fprintf(bw, "%d\n%s\n", rec.Symbol, rec.Path)
	}
	return bw.Flush()
}

// WriteCountedTextHeader is WriteTextHeader with an extra first line holding
// the number of records.
func (t *Tree) WriteCountedTextHeader(w io.Writer) error {
	bw := bufio.NewWriter(w)
	records := t.TextRecords()
	fmt.Fprintf(bw, "%d\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(bw, "%d\n%s\n", rec.Symbol, rec.Path)
	}
	return bw.Flush()
}

// ParseTextHeader reads a Tree written by WriteTextHeader, consuming r until
// EOF.  Records may appear in any order.
func ParseTextHeader(r io.Reader, alphabetSize int) (*Tree, error) {
	var b pathBuilder
	var pending string
	var havePending bool
	lineNum := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if !havePending {
			pending, havePending = line, true
			continue
		}
		havePending = false
		symbol, err := parseTextSymbol(pending, lineNum-1)
		if err != nil {
			return nil, err
		}
		if err := b.insert(symbol, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text header: %w", err)
	}
	if havePending {
		return nil, fmt.Errorf("%w: line %d: symbol %q has no path: %w", ErrFormat, lineNum, pending, ErrStreamExhausted)
	}
	return b.finish(alphabetSize)
}

// ParseCountedTextHeader reads a Tree written by WriteCountedTextHeader.  It
// reads exactly as many lines as the header declares and leaves r positioned
// immediately after them.
func ParseCountedTextHeader(r *bufio.Reader, alphabetSize int) (*Tree, error) {
	lineNum := 0
	nextLine := func() (string, error) {
		line, err := r.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return "", headerReadError("text header", err)
		}
		lineNum++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		return line, nil
	}

	line, err := nextLine()
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(line)
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("%w: line %d: invalid record count %q", ErrFormat, lineNum, line)
	}

	var b pathBuilder
	for i := 0; i < count; i++ {
		line, err := nextLine()
		if err != nil {
			return nil, err
		}
		symbol, err := parseTextSymbol(line, lineNum)
		if err != nil {
			return nil, err
		}
		path, err := nextLine()
		if err != nil {
			return nil, err
		}
		if err := b.insert(symbol, path); err != nil {
			return nil, err
		}
	}
	return b.finish(alphabetSize)
}

// ParseTextRecords builds a Tree from already-split text header records.
func ParseTextRecords(records []TextRecord, alphabetSize int) (*Tree, error) {
	var b pathBuilder
	for _, rec := range records {
		if rec.Symbol < 0 {
			return nil, fmt.Errorf("%w: negative symbol %d", ErrFormat, rec.Symbol)
		}
		if err := b.insert(rec.Symbol, rec.Path); err != nil {
			return nil, err
		}
	}
	return b.finish(alphabetSize)
}

func parseTextSymbol(line string, lineNum int) (Symbol, error) {
	v, err := strconv.ParseInt(line, 10, 32)
	if err != nil || v < 0 {
		return InvalidSymbol, fmt.Errorf("%w: line %d: invalid symbol %q", ErrFormat, lineNum, line)
	}
	return Symbol(v), nil
}

// pathBuilder grows a tree from root-to-leaf paths.  Internal nodes are
// placeholders until finish verifies that each one has both children.
type pathBuilder struct {
	root *pathNode
}

type pathNode struct {
	isLeaf bool
	symbol Symbol
	child  [2]*pathNode
}

func (b *pathBuilder) insert(symbol Symbol, path string) error {
	slot := &b.root
	for i := 0; i < len(path); i++ {
		var dir int
		switch path[i] {
		case '0':
			dir = 0
		case '1':
			dir = 1
		default:
			return fmt.Errorf("%w: path %q for symbol %d contains %q", ErrFormat, path, symbol, path[i])
		}

		n := *slot
		if n == nil {
			n = &pathNode{}
			*slot = n
		} else if n.isLeaf {
			return fmt.Errorf("%w: path %q for symbol %d passes through leaf %d", ErrFormat, path, symbol, n.symbol)
		}
		slot = &n.child[dir]
	}

	if n := *slot; n != nil {
		if n.isLeaf {
			return fmt.Errorf("%w: path %q assigned to both symbol %d and symbol %d", ErrFormat, path, n.symbol, symbol)
		}
		return fmt.Errorf("%w: path %q for symbol %d is a prefix of another path", ErrFormat, path, symbol)
	}
	*slot = &pathNode{isLeaf: true, symbol: symbol}
	return nil
}

func (b *pathBuilder) finish(alphabetSize int) (*Tree, error) {
	if b.root == nil {
		return nil, fmt.Errorf("%w: text header has no records", ErrFormat)
	}
	root, err := b.root.freeze(nil)
	if err != nil {
		return nil, err
	}
	return NewTree(root, alphabetSize)
}

func (n *pathNode) freeze(path []byte) (Node, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: no leaf at path %q", ErrFormat, path)
	}
	if n.isLeaf {
		return NewLeaf(n.symbol), nil
	}
	left, err := n.child[0].freeze(append(path, '0'))
	if err != nil {
		return nil, err
	}
	right, err := n.child[1].freeze(append(path, '1'))
	if err != nil {
		return nil, err
	}
	return NewInternal(left, right), nil
}
