package fragment

import (
	"strings"
	"testing"
)

func TestTextSource_ParagraphsBecomeBodyFragments(t *testing.T) {
	input := "First paragraph line one.\nLine two of the same paragraph.\n\nSecond paragraph.\n\n\nThird paragraph.\n"

	doc, err := (&TextSource{}).Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if doc.ID != "notes" {
		t.Errorf("ID = %q, want %q", doc.ID, "notes")
	}
	if doc.Name != "notes.txt" {
		t.Errorf("Name = %q, want %q", doc.Name, "notes.txt")
	}
	if len(doc.Fragments) != 3 {
		t.Fatalf("got %d fragments, want 3", len(doc.Fragments))
	}

	want := "First paragraph line one.\nLine two of the same paragraph."
	if doc.Fragments[0].Text != want {
		t.Errorf("fragment 0 = %q, want %q", doc.Fragments[0].Text, want)
	}
	for i, f := range doc.Fragments {
		if f.FontSize != BodySize {
			t.Errorf("fragment %d size = %v, want body size", i, f.FontSize)
		}
		if f.Bold {
			t.Errorf("fragment %d unexpectedly bold", i)
		}
		if f.Position != i {
			t.Errorf("fragment %d position = %d", i, f.Position)
		}
	}
}

func TestTextSource_EmptyInput(t *testing.T) {
	doc, err := (&TextSource{}).Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(doc.Fragments) != 0 {
		t.Errorf("got %d fragments, want 0", len(doc.Fragments))
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
		wantErr  bool
	}{
		{"report.pdf", "*fragment.PDFSource", false},
		{"README.md", "*fragment.MarkdownSource", false},
		{"notes.markdown", "*fragment.MarkdownSource", false},
		{"page.html", "*fragment.HTMLSource", false},
		{"page.HTM", "*fragment.HTMLSource", false},
		{"memo.docx", "*fragment.DOCXSource", false},
		{"plain.txt", "*fragment.TextSource", false},
		{"image.png", "", true},
		{"noextension", "", true},
	}

	for _, tt := range tests {
		src, err := ForFile(tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFile(%q): expected error", tt.filename)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFile(%q): %v", tt.filename, err)
			continue
		}
		if got := typeName(src); got != tt.wantType {
			t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.wantType)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *PDFSource:
		return "*fragment.PDFSource"
	case *MarkdownSource:
		return "*fragment.MarkdownSource"
	case *HTMLSource:
		return "*fragment.HTMLSource"
	case *DOCXSource:
		return "*fragment.DOCXSource"
	case *TextSource:
		return "*fragment.TextSource"
	default:
		return "unknown"
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.pdf", "b.md", "c.html", "d.docx", "e.txt"} {
		if !IsSupportedExtension(name) {
			t.Errorf("IsSupportedExtension(%q) = false", name)
		}
	}
	for _, name := range []string{"a.png", "b.exe", "c"} {
		if IsSupportedExtension(name) {
			t.Errorf("IsSupportedExtension(%q) = true", name)
		}
	}
}
