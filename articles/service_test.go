package articles

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
	"github.com/google/uuid"
)

const validArticle = `---
title: Ten Practices
publishedAt: 2024-01-15
author: Jane Doe
---

intro paragraph

## 1. One

content

## Conclusion

done
`

const invalidArticle = `---
title: Broken
publishedAt: someday
author: Jane Doe
---

body
`

type memoryRepo struct {
	records map[string]*Article
	creates int
	updates int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: map[string]*Article{}}
}

func (m *memoryRepo) Create(_ context.Context, record *Article) (*Article, error) {
	m.creates++
	m.records[record.Slug] = record
	return record, nil
}

func (m *memoryRepo) Update(_ context.Context, record *Article) (*Article, error) {
	m.updates++
	m.records[record.Slug] = record
	return record, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, &NotFoundError{Resource: "article", Key: id.String()}
}

func (m *memoryRepo) GetBySlug(_ context.Context, slug string) (*Article, error) {
	if record, ok := m.records[slug]; ok {
		return record, nil
	}
	return nil, &NotFoundError{Resource: "article", Key: slug}
}

func (m *memoryRepo) List(_ context.Context) ([]*Article, error) {
	out := make([]*Article, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, record)
	}
	return out, nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for slug, record := range m.records {
		if record.ID == id {
			delete(m.records, slug)
			return nil
		}
	}
	return &NotFoundError{Resource: "article", Key: id.String()}
}

func newTestService(tb testing.TB, files map[string]string) (*Service, *memoryRepo) {
	tb.Helper()

	mapFS := fstest.MapFS{}
	for path, content := range files {
		mapFS[path] = &fstest.MapFile{Data: []byte(content), ModTime: time.Now()}
	}
	docs := markdown.NewServiceWithFS(markdown.Config{Recursive: true}, nil, mapFS)

	repo := newMemoryRepo()
	svc, err := NewService(docs, repo, WithClock(func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		tb.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func TestNewService_RequiresCollaborators(t *testing.T) {
	if _, err := NewService(nil, newMemoryRepo()); !errors.Is(err, ErrDocumentsRequired) {
		t.Fatalf("expected ErrDocumentsRequired, got %v", err)
	}
	docs := markdown.NewServiceWithFS(markdown.Config{}, nil, fstest.MapFS{})
	if _, err := NewService(docs, nil); !errors.Is(err, ErrRepositoryRequired) {
		t.Fatalf("expected ErrRepositoryRequired, got %v", err)
	}
}

func TestService_ImportFile_Creates(t *testing.T) {
	svc, _ := newTestService(t, map[string]string{"posts/ten.md": validArticle})

	result, err := svc.ImportFile(context.Background(), "posts/ten.md", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected import errors: %v", result.Errors)
	}
	if len(result.CreatedIDs) != 1 {
		t.Fatalf("expected one created record, got %#v", result)
	}

	record, err := svc.GetBySlug(context.Background(), "ten-practices")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if record.Title != "Ten Practices" || record.Author != "Jane Doe" {
		t.Fatalf("record fields mismatch: %#v", record)
	}
	if record.PublishedAtRaw != "2024-01-15" {
		t.Fatalf("expected raw publishedAt preserved, got %q", record.PublishedAtRaw)
	}
	if record.PublishedAt != time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected parsed publishedAt %v", record.PublishedAt)
	}
	if !bytes.Equal(record.Source, []byte(validArticle)) {
		t.Fatalf("stored source must be byte-identical to the file")
	}
	if record.ID == uuid.Nil || record.AuthorID == uuid.Nil {
		t.Fatalf("expected deterministic IDs, got %#v", record)
	}
}

func TestService_Import_DeterministicIDs(t *testing.T) {
	svcA, _ := newTestService(t, map[string]string{"a/ten.md": validArticle})
	svcB, _ := newTestService(t, map[string]string{"b/ten.md": validArticle})

	resA, err := svcA.ImportFile(context.Background(), "a/ten.md", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	resB, err := svcB.ImportFile(context.Background(), "b/ten.md", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if resA.CreatedIDs[0] != resB.CreatedIDs[0] {
		t.Fatalf("same slug must map onto the same ID")
	}
}

func TestService_Import_SkipsUnchanged(t *testing.T) {
	svc, repo := newTestService(t, map[string]string{"posts/ten.md": validArticle})
	ctx := context.Background()

	if _, err := svc.ImportFile(ctx, "posts/ten.md", interfaces.ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	result, err := svc.ImportFile(ctx, "posts/ten.md", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(result.SkippedIDs) != 1 || len(result.CreatedIDs) != 0 {
		t.Fatalf("expected unchanged document to be skipped, got %#v", result)
	}
	if repo.creates != 1 || repo.updates != 0 {
		t.Fatalf("unexpected repo writes: creates=%d updates=%d", repo.creates, repo.updates)
	}
}

func TestService_Import_UpdateExisting(t *testing.T) {
	changed := validArticle + "\nAn extra closing paragraph.\n"
	svc, repo := newTestService(t, map[string]string{
		"old/ten.md": validArticle,
		"new/ten.md": changed,
	})
	ctx := context.Background()

	if _, err := svc.ImportFile(ctx, "old/ten.md", interfaces.ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	// Without UpdateExisting the changed document is skipped.
	result, err := svc.ImportFile(ctx, "new/ten.md", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if len(result.SkippedIDs) != 1 {
		t.Fatalf("expected changed document to be skipped, got %#v", result)
	}

	result, err = svc.ImportFile(ctx, "new/ten.md", interfaces.ImportOptions{UpdateExisting: true})
	if err != nil {
		t.Fatalf("third import: %v", err)
	}
	if len(result.UpdatedIDs) != 1 {
		t.Fatalf("expected changed document to be updated, got %#v", result)
	}
	if repo.updates != 1 {
		t.Fatalf("expected one repository update, got %d", repo.updates)
	}

	record, err := svc.GetBySlug(ctx, "ten-practices")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if !bytes.Equal(record.Source, []byte(changed)) {
		t.Fatalf("expected updated source to be stored")
	}
}

func TestService_Import_DryRun(t *testing.T) {
	svc, repo := newTestService(t, map[string]string{"posts/ten.md": validArticle})

	result, err := svc.ImportFile(context.Background(), "posts/ten.md", interfaces.ImportOptions{DryRun: true})
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(result.CreatedIDs) != 1 {
		t.Fatalf("dry run should still report the pending create, got %#v", result)
	}
	if repo.creates != 0 {
		t.Fatalf("dry run must not persist records")
	}
}

func TestService_ImportDirectory_CollectsErrors(t *testing.T) {
	svc, repo := newTestService(t, map[string]string{
		"posts/good.md": validArticle,
		"posts/bad.md":  invalidArticle,
	})

	result, err := svc.ImportDirectory(context.Background(), "posts", interfaces.ImportOptions{})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	if len(result.CreatedIDs) != 1 {
		t.Fatalf("expected the valid document to import, got %#v", result)
	}
	if len(result.Errors) != 1 || !errors.Is(result.Errors[0], ErrPublishedAtInvalid) {
		t.Fatalf("expected a publishedAt error, got %v", result.Errors)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one create, got %d", repo.creates)
	}
}

func TestService_Import_ProfileGate(t *testing.T) {
	svc, repo := newTestService(t, map[string]string{"posts/ten.md": validArticle})

	profile := &interfaces.Profile{
		// The fixture has a single numbered section; demand ten to force a
		// violation.
		NumberedSections:  10,
		RequireIntro:      true,
		RequireConclusion: true,
	}
	result, err := svc.ImportFile(context.Background(), "posts/ten.md", interfaces.ImportOptions{Profile: profile})
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(result.Errors) != 1 || !errors.Is(result.Errors[0], ErrProfileViolated) {
		t.Fatalf("expected profile violation, got %v", result.Errors)
	}
	if repo.creates != 0 {
		t.Fatalf("profile violation must block the import")
	}

	profile.NumberedSections = 1
	result, err = svc.ImportFile(context.Background(), "posts/ten.md", interfaces.ImportOptions{Profile: profile})
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(result.CreatedIDs) != 1 {
		t.Fatalf("expected clean import after matching profile, got %#v", result)
	}
}

func TestService_Source_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t, map[string]string{"posts/ten.md": validArticle})
	ctx := context.Background()

	if _, err := svc.ImportFile(ctx, "posts/ten.md", interfaces.ImportOptions{}); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}

	source, err := svc.Source(ctx, "ten-practices")
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if !bytes.Equal(source, []byte(validArticle)) {
		t.Fatalf("stored source must round-trip byte-identically")
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := newTestService(t, map[string]string{})

	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}
