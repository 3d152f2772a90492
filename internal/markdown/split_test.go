package markdown

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestSplitDocument(t *testing.T) {
	source := readFixture(t, "testdata/best-practices.md")

	rawFM, body, err := SplitDocument(source)
	if err != nil {
		t.Fatalf("SplitDocument: %v", err)
	}

	if !bytes.HasPrefix(rawFM, []byte("---\n")) {
		t.Fatalf("raw frontmatter should start with the opening fence, got %q", rawFM[:8])
	}
	if !bytes.Contains(rawFM, []byte("publishedAt: 2024-01-15")) {
		t.Fatalf("raw frontmatter missing publishedAt line: %q", rawFM)
	}
	if bytes.Contains(body, []byte("publishedAt")) {
		t.Fatalf("body should not contain frontmatter content")
	}
	if !bytes.HasPrefix(bytes.TrimLeft(body, "\n"), []byte("Writing clean code")) {
		t.Fatalf("body should start with the introduction, got %q", body[:40])
	}

	joined := append(append([]byte(nil), rawFM...), body...)
	if !bytes.Equal(joined, source) {
		t.Fatalf("frontmatter + body must reproduce the source exactly")
	}
}

func TestSplitDocument_Errors(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   error
	}{
		{"no frontmatter", "# Heading\n\nbody\n", ErrMissingFrontMatter},
		{"content on fence line", "--- title: x\nbody\n", ErrMissingFrontMatter},
		{"unterminated", "---\ntitle: x\nbody without closing fence\n", ErrUnterminatedFrontMatter},
		{"empty", "", ErrMissingFrontMatter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := SplitDocument([]byte(tc.source)); !errors.Is(err, tc.want) {
				t.Fatalf("SplitDocument(%q): got %v, want %v", tc.source, err, tc.want)
			}
		})
	}
}

func TestSplitDocument_FenceAtEOF(t *testing.T) {
	source := []byte("---\ntitle: x\n---")

	rawFM, body, err := SplitDocument(source)
	if err != nil {
		t.Fatalf("SplitDocument: %v", err)
	}
	if !bytes.Equal(rawFM, source) {
		t.Fatalf("expected the whole source as frontmatter, got %q", rawFM)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", body)
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
