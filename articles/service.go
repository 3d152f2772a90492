package articles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-article/internal/identity"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
	"github.com/google/uuid"
)

// ArticleRepository is the storage contract the service depends on. The bun
// implementation satisfies it; tests may substitute an in-memory fake.
type ArticleRepository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service imports parsed documents into the article store and answers
// queries over stored records.
type Service struct {
	docs   interfaces.ArticleService
	repo   ArticleRepository
	logger interfaces.Logger
	now    func() time.Time
}

// ServiceOption customises service construction.
type ServiceOption func(*Service)

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source, primarily for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs the article service over a document service and a
// repository.
func NewService(docs interfaces.ArticleService, repo ArticleRepository, opts ...ServiceOption) (*Service, error) {
	if docs == nil {
		return nil, ErrDocumentsRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	svc := &Service{
		docs:   docs,
		repo:   repo,
		logger: logging.NoOp(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc, nil
}

// Validate checks a document's metadata and, when a profile is supplied, its
// body structure.
func (s *Service) Validate(ctx context.Context, doc *interfaces.Document, profile *interfaces.Profile) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if doc == nil {
		return errors.New("articles: document is nil")
	}

	if err := ValidateFrontMatter(doc.FrontMatter); err != nil {
		return err
	}

	if profile == nil {
		return nil
	}

	if profile.Strict {
		if err := ValidateStrictFrontMatter(doc.FrontMatter.Raw); err != nil {
			return err
		}
	}

	issues, err := s.docs.Lint(ctx, doc, *profile)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		return &ProfileViolationError{Path: doc.FilePath, Issues: issues}
	}
	return nil
}

// ImportFile loads, validates, and persists a single document.
func (s *Service) ImportFile(ctx context.Context, path string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	doc, err := s.docs.Load(ctx, path, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}

	result := &interfaces.ImportResult{}
	if err := s.importDocument(ctx, doc, opts, result); err != nil {
		result.Errors = append(result.Errors, err)
	}
	return result, nil
}

// ImportDirectory imports every document discovered under dir. Per-document
// failures are collected on the result so one bad file does not abort the run.
func (s *Service) ImportDirectory(ctx context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	docs, err := s.docs.LoadDirectory(ctx, dir, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}

	result := &interfaces.ImportResult{}
	for _, doc := range docs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err := s.importDocument(ctx, doc, opts, result); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("import %s: %w", doc.FilePath, err))
		}
	}

	logging.WithFields(s.logger, map[string]any{
		"created_count": len(result.CreatedIDs),
		"updated_count": len(result.UpdatedIDs),
		"skipped_count": len(result.SkippedIDs),
		"error_count":   len(result.Errors),
		"dry_run":       opts.DryRun,
	}).Info("articles.import_directory.completed")

	return result, nil
}

// Get returns a stored article by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug returns a stored article by its slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns every stored article.
func (s *Service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.List(ctx)
}

// Source returns the stored raw document for a slug. The bytes are identical
// to the file that was imported.
func (s *Service) Source(ctx context.Context, slug string) ([]byte, error) {
	record, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return record.Source, nil
}

func (s *Service) importDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions, result *interfaces.ImportResult) error {
	if err := s.Validate(ctx, doc, opts.Profile); err != nil {
		return err
	}

	record, err := s.toRecord(doc, opts)
	if err != nil {
		return err
	}

	logger := logging.WithDocumentContext(s.logger, doc.FilePath, "")

	existing, err := s.repo.GetBySlug(ctx, record.Slug)
	if err != nil {
		if !errors.Is(err, ErrArticleNotFound) {
			return err
		}
		if !opts.DryRun {
			if _, err := s.repo.Create(ctx, record); err != nil {
				return err
			}
		}
		result.CreatedIDs = append(result.CreatedIDs, record.ID)
		logger.Info("articles.import.created", "slug", record.Slug)
		return nil
	}

	if bytes.Equal(existing.Checksum, record.Checksum) {
		result.SkippedIDs = append(result.SkippedIDs, existing.ID)
		logger.Debug("articles.import.unchanged", "slug", record.Slug)
		return nil
	}

	if !opts.UpdateExisting {
		result.SkippedIDs = append(result.SkippedIDs, existing.ID)
		logger.Debug("articles.import.skipped_changed", "slug", record.Slug)
		return nil
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	if !opts.DryRun {
		if _, err := s.repo.Update(ctx, record); err != nil {
			return err
		}
	}
	result.UpdatedIDs = append(result.UpdatedIDs, existing.ID)
	logger.Info("articles.import.updated", "slug", record.Slug)
	return nil
}

func (s *Service) toRecord(doc *interfaces.Document, opts interfaces.ImportOptions) (*Article, error) {
	publishedAt, err := PublishedDate(doc.FrontMatter)
	if err != nil {
		return nil, err
	}

	slug, err := NormalizeSlug(doc.FrontMatter.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSlugInvalid, err)
	}
	if slug == "" {
		return nil, ErrSlugRequired
	}

	authorID := opts.AuthorID
	if authorID == uuid.Nil {
		authorID = identity.AuthorUUID(doc.FrontMatter.Author)
	}

	now := s.now()
	source, err := markdown.Serialize(doc)
	if err != nil {
		return nil, err
	}

	return &Article{
		ID:             identity.ArticleUUID(slug),
		Slug:           slug,
		Title:          doc.FrontMatter.Title,
		Author:         doc.FrontMatter.Author,
		AuthorID:       authorID,
		PublishedAt:    publishedAt,
		PublishedAtRaw: doc.FrontMatter.PublishedAt,
		SourcePath:     doc.FilePath,
		Checksum:       append([]byte(nil), doc.Checksum...),
		Source:         source,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
