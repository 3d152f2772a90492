package articles

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// strictFrontMatterSchema accepts exactly the three canonical fields, all
// non-empty strings.
const strictFrontMatterSchema = `{
	"type": "object",
	"required": ["title", "publishedAt", "author"],
	"additionalProperties": false,
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"publishedAt": {"type": "string", "minLength": 1},
		"author": {"type": "string", "minLength": 1}
	}
}`

var strictSchema = jsonschema.MustCompileString("frontmatter.json", strictFrontMatterSchema)

// ValidateFrontMatter checks the canonical metadata fields: title, author,
// and a publishedAt value that parses as a calendar date.
func ValidateFrontMatter(fm interfaces.FrontMatter) error {
	err := validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required.ErrorObject(
			validation.NewError("articles.frontmatter.title_required", "title is required"))),
		validation.Field(&fm.Author, validation.Required.ErrorObject(
			validation.NewError("articles.frontmatter.author_required", "author is required"))),
		validation.Field(&fm.PublishedAt,
			validation.Required.ErrorObject(
				validation.NewError("articles.frontmatter.published_at_required", "publishedAt is required")),
			validation.By(publishedAtRule),
		),
	)
	if err != nil {
		return &FrontMatterValidationError{Cause: err}
	}
	return nil
}

// ValidateStrictFrontMatter checks the raw key set against the strict schema:
// exactly title, publishedAt, and author, all non-empty strings.
func ValidateStrictFrontMatter(raw map[string]any) error {
	payload, err := canonicalizeForJSON(raw)
	if err != nil {
		return &FrontMatterValidationError{Cause: err}
	}
	if err := strictSchema.Validate(payload); err != nil {
		return &FrontMatterValidationError{Cause: err}
	}
	return nil
}

// PublishedDate parses the document's publishedAt field.
func PublishedDate(fm interfaces.FrontMatter) (time.Time, error) {
	ts, _, err := markdown.ParsePublishedAt(fm.PublishedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrPublishedAtInvalid, err)
	}
	return ts, nil
}

func publishedAtRule(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		// Required already reports the empty case.
		return nil
	}
	if _, _, err := markdown.ParsePublishedAt(raw); err != nil {
		return validation.NewError("articles.frontmatter.published_at_invalid", err.Error())
	}
	return nil
}

// canonicalizeForJSON converts a decoded frontmatter map into plain JSON
// values. YAML decoders can produce interface-keyed maps and time values that
// json.Marshal rejects.
func canonicalizeForJSON(raw map[string]any) (any, error) {
	sanitized := make(map[string]any, len(raw))
	for key, value := range raw {
		sanitized[key] = sanitizeValue(value)
	}

	encoded, err := json.Marshal(sanitized)
	if err != nil {
		return nil, fmt.Errorf("canonicalize frontmatter: %w", err)
	}

	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, fmt.Errorf("canonicalize frontmatter: %w", err)
	}
	return payload, nil
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = sanitizeValue(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = sanitizeValue(v[i])
		}
		return out
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return v
	}
}
