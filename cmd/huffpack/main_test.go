package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronos-tachyon/huffmantree/internal/logger"
)

func TestEncodeDecode(t *testing.T) {
	inputs := map[string][]byte{
		"empty":  nil,
		"single": []byte("aaaaaaa"),
		"text":   []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 20)),
		"binary": {0x00, 0xff, 0x80, 0x00, 0x7f, 0xff, 0x00},
	}
	for _, formatName := range []string{"bits", "text"} {
		format, err := parseHeaderFormat(formatName)
		if err != nil {
			t.Fatalf("parseHeaderFormat failed: %v", err)
		}
		for name, data := range inputs {
			t.Run(formatName+"/"+name, func(t *testing.T) {
				var encoded bytes.Buffer
				if err := encode(&encoded, data, format); err != nil {
					t.Fatalf("encode failed: %v", err)
				}
				var decoded bytes.Buffer
				if err := decode(&decoded, bytes.NewReader(encoded.Bytes()), format); err != nil {
					t.Fatalf("decode failed: %v", err)
				}
				if !bytes.Equal(data, decoded.Bytes()) {
					t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", data, decoded.Bytes())
				}
			})
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "input.txt")
	packed := filepath.Join(dir, "input.txt.huff")
	unpacked := filepath.Join(dir, "output.txt")

	data := []byte(strings.Repeat("mississippi ", 50))
	if err := os.WriteFile(original, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var logs strings.Builder
	log := logger.New(&logs, "")
	if err := run([]string{"encode", "-header", "text", original, packed}, log); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if err := run([]string{"decode", "-header", "text", packed, unpacked}, log); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	actual, err := os.ReadFile(unpacked)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(data, actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", data, actual)
	}
	if !strings.Contains(logs.String(), "[INFO] encoded ") || !strings.Contains(logs.String(), "[INFO] decoded ") {
		t.Errorf("missing log lines: %q", logs.String())
	}
}

func TestWriteFile_RemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.huff")
	errWrite := errors.New("corrupt input")

	n, err := writeFile(path, func(w io.Writer) error {
		if _, err := w.Write([]byte("half")); err != nil {
			return err
		}
		return errWrite
	})
	if !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
	if n != 4 {
		t.Errorf("wrong byte count:\n\texpect: 4\n\tactual: %d", n)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial output was left behind: %v", err)
	}

	// A failed decode must not leave a truncated file either.
	garbage := filepath.Join(filepath.Dir(path), "garbage.huff")
	output := filepath.Join(filepath.Dir(path), "garbage.out")
	if err := os.WriteFile(garbage, []byte{0x00}, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := run([]string{"decode", garbage, output}, logger.New(io.Discard, "")); err == nil {
		t.Errorf("decoding garbage unexpectedly succeeded")
	}
	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial output was left behind: %v", err)
	}
}

func TestRun_BadArgs(t *testing.T) {
	log := logger.New(io.Discard, "")
	for _, args := range [][]string{
		nil,
		{"encode"},
		{"squash", "a", "b"},
		{"encode", "-header", "yaml", "a", "b"},
	} {
		if err := run(args, log); err == nil {
			t.Errorf("run(%q) unexpectedly succeeded", args)
		}
	}
}
