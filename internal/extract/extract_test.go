package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocxText(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Experienced engineer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Shipped things</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, doc)

	text, err := New().Extract(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text, "Experienced engineer") {
		t.Fatalf("missing first paragraph in %q", text)
	}
	if !strings.Contains(text, "Shipped things") {
		t.Fatalf("missing second paragraph in %q", text)
	}
}

func TestExtractRejectsPlainZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = New().Extract(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractCorruptPDFFails(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("not a pdf at all"), "application/pdf", "resume.pdf")
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestExtractUnsupportedMime(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("plain"), "image/png", "photo.png")
	if err == nil {
		t.Fatal("expected unsupported mime error")
	}
}
