package articles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-article/pkg/interfaces"
)

var (
	ErrTitleRequired       = errors.New("articles: title is required")
	ErrAuthorRequired      = errors.New("articles: author is required")
	ErrPublishedAtRequired = errors.New("articles: publishedAt is required")
	ErrPublishedAtInvalid  = errors.New("articles: publishedAt is not a valid calendar date")
	ErrFrontMatterInvalid  = errors.New("articles: frontmatter validation failed")
	ErrSlugRequired        = errors.New("articles: slug is required")
	ErrSlugInvalid         = errors.New("articles: slug contains invalid characters")
	ErrArticleNotFound     = errors.New("articles: article not found")
	ErrProfileViolated     = errors.New("articles: document violates the structural profile")
	ErrRepositoryRequired  = errors.New("articles: repository is required")
	ErrDocumentsRequired   = errors.New("articles: document service is required")
)

// NotFoundError captures missing article lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrArticleNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: %s=%s", ErrArticleNotFound.Error(), e.Resource, key)
	}
	return ErrArticleNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrArticleNotFound
}

// ProfileViolationError carries the lint issues that blocked an import or
// validation call.
type ProfileViolationError struct {
	Path   string
	Issues []interfaces.Issue
}

func (e *ProfileViolationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrProfileViolated.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Code)
	}
	path := strings.TrimSpace(e.Path)
	if path == "" {
		return fmt.Sprintf("%s: %s", ErrProfileViolated.Error(), strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s: %s", ErrProfileViolated.Error(), path, strings.Join(parts, ", "))
}

func (e *ProfileViolationError) Unwrap() error {
	return ErrProfileViolated
}

// FrontMatterValidationError surfaces field-level metadata failures with the
// offending path attached.
type FrontMatterValidationError struct {
	Path  string
	Cause error
}

func (e *FrontMatterValidationError) Error() string {
	if e == nil {
		return ErrFrontMatterInvalid.Error()
	}
	path := strings.TrimSpace(e.Path)
	if e.Cause == nil {
		if path == "" {
			return ErrFrontMatterInvalid.Error()
		}
		return fmt.Sprintf("%s: %s", ErrFrontMatterInvalid.Error(), path)
	}
	if path == "" {
		return fmt.Sprintf("%s: %v", ErrFrontMatterInvalid.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s: %v", ErrFrontMatterInvalid.Error(), path, e.Cause)
}

func (e *FrontMatterValidationError) Unwrap() error {
	return ErrFrontMatterInvalid
}
