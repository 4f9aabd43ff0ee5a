package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestCode(t *testing.T) {
	type testRow struct {
		code     Code
		str      string
		reversed Code
	}

	testData := [...]testRow{
		{MakeCode(0, 0), "\"\"", MakeCode(0, 0)},
		{MakeCode(1, 1), "\"1\"", MakeCode(1, 1)},
		{MakeCode(3, 0x1), "\"100\"", MakeCode(3, 0x4)},
		{MakeCode(4, 0x6), "\"0110\"", MakeCode(4, 0x6)},
		{MakeCode(64, 1), "\"1" + strings.Repeat("0", 63) + "\"", MakeCode(64, 1<<63)},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			if actual := row.code.String(); actual != row.str {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.str, actual)
			}
			if actual := row.code.Reversed(); actual != row.reversed {
				t.Errorf("wrong reversal:\n\texpect: %#v\n\tactual: %#v", row.reversed, actual)
			}
		})
	}
}

func TestCodeTable(t *testing.T) {
	tree, err := Build([]int64{1, 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	ct, err := tree.CodeTable()
	if err != nil {
		t.Fatalf("CodeTable failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tLookup(0) = \"10\"\n",
		"\tLookup(1) = \"11\"\n",
		"\tLookup(2) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if ct.Len() != 3 {
		t.Errorf("wrong table size:\n\texpect: 3\n\tactual: %d", ct.Len())
	}
	for _, symbol := range []Symbol{-1, 3, 100} {
		if _, ok := ct.Lookup(symbol); ok {
			t.Errorf("Lookup(%d) unexpectedly succeeded", symbol)
		}
	}

	paths := tree.Paths()
	for symbol, path := range paths {
		hc, _ := ct.Lookup(Symbol(symbol))
		if hc.Path() != path {
			t.Errorf("symbol %d: Paths() = %q but Lookup = %s", symbol, path, hc)
		}
	}
}

func TestCodeTable_TooDeep(t *testing.T) {
	// A caterpillar tree puts its deepest leaves 70 levels down.
	var root Node = NewLeaf(0)
	for i := 1; i <= 70; i++ {
		root = NewInternal(NewLeaf(Symbol(i)), root)
	}
	tree, err := NewTree(root, 70)
	if err != nil {
		t.Fatalf("NewTree failed: %v", err)
	}
	if _, err := tree.CodeTable(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if paths := tree.Paths(); len(paths[0]) != 70 {
		t.Errorf("wrong path length:\n\texpect: 70\n\tactual: %d", len(paths[0]))
	}
}
