package markdown

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-article/pkg/interfaces"
)

// publishedAtLayouts enumerates the date forms accepted for the publishedAt
// field, in match order. The source string is never rewritten; parsing only
// establishes validity and ordering.
var publishedAtLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. It returns the structured frontmatter, the body without
// delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	raw := map[string]any{}
	if _, err := frontmatter.Parse(bytes.NewReader(source), &raw); err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter raw keys: %w", err)
	}

	return envelopeToFrontMatter(meta, raw), body, nil
}

// ParsePublishedAt reports the calendar date encoded by a publishedAt value.
// The matched layout is returned alongside the parsed time.
func ParsePublishedAt(value string) (time.Time, string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, "", fmt.Errorf("publishedAt is empty")
	}
	for _, layout := range publishedAtLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("publishedAt %q is not a recognised date", value)
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily; the raw frontmatter segment is preserved for
// byte-identical serialization.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	rawFM, rawBody, err := SplitDocument(source)
	if err != nil {
		return nil, fmt.Errorf("build document %s: %w", path, err)
	}

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("build document %s: %w", path, err)
	}

	blocks, err := ExtractBlocks(rawBody)
	if err != nil {
		return nil, fmt.Errorf("build document %s: %w", path, err)
	}

	sum := sha256.Sum256(source)

	return &interfaces.Document{
		FilePath:       path,
		FrontMatter:    fm,
		RawFrontMatter: rawFM,
		Body:           rawBody,
		Blocks:         blocks,
		LastModified:   modified,
		Checksum:       sum[:],
	}, nil
}

type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	PublishedAt string         `yaml:"publishedAt"`
	Author      string         `yaml:"author"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope, raw map[string]any) interfaces.FrontMatter {
	if raw == nil {
		raw = map[string]any{}
	}

	return interfaces.FrontMatter{
		Title:       env.Title,
		PublishedAt: env.PublishedAt,
		Author:      env.Author,
		Custom:      cloneMap(env.Custom),
		Raw:         raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
