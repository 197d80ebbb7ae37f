package ingest

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/quotecraft/rfq-analyzer/constants"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n%stub\n%%EOF\n")
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zeta.pdf", pdfBytes())
	writeFile(t, dir, "alpha.png", pngBytes(t))
	writeFile(t, dir, "notes.txt", []byte("not a drawing"))
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o700); err != nil {
		t.Fatal(err)
	}

	docs, err := ScanDirectory(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Name != "alpha.png" || docs[1].Name != "zeta.pdf" {
		t.Errorf("documents not sorted by name: %s, %s", docs[0].Name, docs[1].Name)
	}
	if docs[0].Format != constants.IMAGE {
		t.Errorf("alpha.png format = %q", docs[0].Format)
	}
	if docs[1].Format != constants.PDF {
		t.Errorf("zeta.pdf format = %q", docs[1].Format)
	}
	if len(docs[1].Data) == 0 {
		t.Error("document data not loaded")
	}
}

func TestScanDirectorySkipsMismatchedContent(t *testing.T) {
	dir := t.TempDir()
	// A text file wearing a .pdf extension.
	writeFile(t, dir, "fake.pdf", []byte("just some text"))
	writeFile(t, dir, "real.pdf", pdfBytes())

	docs, err := ScanDirectory(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "real.pdf" {
		t.Fatalf("expected only real.pdf, got %v", docs)
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	if _, err := ScanDirectory("/no/such/dir", nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sketch.jpeg", pngBytes(t))

	doc, err := LoadFile(filepath.Join(dir, "sketch.jpeg"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "sketch.jpeg" {
		t.Errorf("name = %q", doc.Name)
	}
	if doc.Format != constants.IMAGE {
		t.Errorf("format = %q", doc.Format)
	}

	if _, err := LoadFile(filepath.Join(dir, "report.docx")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}
