package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-article/pkg/interfaces"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/best-practices.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "10 Essential Best Practices for Writing Clean and Efficient Code" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.PublishedAt != "2024-01-15" {
		t.Fatalf("FrontMatter PublishedAt mismatch, got %q", fm.PublishedAt)
	}
	if fm.Author != "Jane Doe" {
		t.Fatalf("FrontMatter Author mismatch, got %q", fm.Author)
	}
	if len(fm.Custom) != 0 {
		t.Fatalf("expected no custom keys, got %#v", fm.Custom)
	}
	if fm.Raw["author"] != "Jane Doe" {
		t.Fatalf("FrontMatter Raw author missing: %#v", fm.Raw)
	}
	if len(body) == 0 || !strings.Contains(string(body), "## 1. Use Meaningful Names") {
		t.Fatalf("markdown body not returned correctly")
	}
}

func TestParseFrontMatter_CustomKeys(t *testing.T) {
	source := []byte("---\ntitle: T\npublishedAt: 2024-01-15\nauthor: A\ntags:\n  - go\n---\nbody\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if _, ok := fm.Custom["tags"]; !ok {
		t.Fatalf("expected tags to land in Custom, got %#v", fm.Custom)
	}
	if _, ok := fm.Raw["tags"]; !ok {
		t.Fatalf("expected tags to land in Raw, got %#v", fm.Raw)
	}
}

func TestParsePublishedAt(t *testing.T) {
	cases := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"2024-01-15T09:30:00Z", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), false},
		{"Jan 15, 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"not a date", time.Time{}, true},
		{"", time.Time{}, true},
		{"2024-13-45", time.Time{}, true},
	}

	for _, tc := range cases {
		ts, _, err := ParsePublishedAt(tc.value)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParsePublishedAt(%q): expected error", tc.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePublishedAt(%q): %v", tc.value, err)
		}
		if !ts.Equal(tc.want) {
			t.Fatalf("ParsePublishedAt(%q): got %v, want %v", tc.value, ts, tc.want)
		}
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/best-practices.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/best-practices.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "testdata/best-practices.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
	if len(doc.Blocks) == 0 {
		t.Fatalf("expected Blocks to be extracted")
	}
	if len(doc.Checksum) != 32 {
		t.Fatalf("expected a SHA-256 checksum, got %d bytes", len(doc.Checksum))
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}
