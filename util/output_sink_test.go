package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileOpener_IsLazyAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	open := FileOpener(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file not to exist before open, stat err = %v", err)
	}

	if err := os.WriteFile(path, []byte("previous, longer content"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	w.Write([]byte("{}"))
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "{}" {
		t.Errorf("expected truncated file with '{}', got %q", data)
	}
}

func TestWriterOpener_DoesNotCloseUnderlying(t *testing.T) {
	var buf bytes.Buffer
	w, err := WriterOpener(&buf)()
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("abc"))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	buf.WriteString("def")

	if buf.String() != "abcdef" {
		t.Errorf("got %q", buf.String())
	}
}
