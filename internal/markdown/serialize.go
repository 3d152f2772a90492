package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-article/pkg/interfaces"
)

// Serialize writes a document back to its on-disk form. Because parsing keeps
// the frontmatter block and body exactly as read, serializing a parsed
// document reproduces the original source byte for byte.
func Serialize(doc *interfaces.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("markdown serialize: document is nil")
	}
	if len(doc.RawFrontMatter) == 0 {
		return nil, fmt.Errorf("markdown serialize: document %s has no frontmatter segment", doc.FilePath)
	}

	out := make([]byte, 0, len(doc.RawFrontMatter)+len(doc.Body))
	out = append(out, doc.RawFrontMatter...)
	out = append(out, doc.Body...)
	return out, nil
}

// canonicalFrontMatter fixes the emitted key order for composed documents:
// the three canonical fields first, then any custom keys in yaml's sorted
// order.
type canonicalFrontMatter struct {
	Title       string         `yaml:"title"`
	PublishedAt string         `yaml:"publishedAt"`
	Author      string         `yaml:"author"`
	Custom      map[string]any `yaml:",inline"`
}

// Compose renders a new document from structured frontmatter and a markdown
// body. Unlike Serialize, Compose produces canonical output (two-space yaml
// indentation, delimiters on their own lines) for documents that did not
// originate from disk.
func Compose(fm interfaces.FrontMatter, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(canonicalFrontMatter{
		Title:       fm.Title,
		PublishedAt: fm.PublishedAt,
		Author:      fm.Author,
		Custom:      fm.Custom,
	}); err != nil {
		return nil, fmt.Errorf("markdown compose: encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("markdown compose: close encoder: %w", err)
	}

	buf.WriteString("---\n")
	if len(body) > 0 {
		buf.WriteString("\n")
		buf.Write(body)
		if body[len(body)-1] != '\n' {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
