package main

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-article/articles"
	"github.com/goliatone/go-article/cmd/article/internal/bootstrap"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/pkg/interfaces"
)

type stubDocs struct {
	documents []*interfaces.Document
	issues    map[string][]interfaces.Issue
	profile   interfaces.Profile
}

func (s *stubDocs) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return nil, nil
}

func (s *stubDocs) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return s.documents, nil
}

func (s *stubDocs) Render(context.Context, []byte, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubDocs) RenderDocument(context.Context, *interfaces.Document, interfaces.ParseOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubDocs) Lint(_ context.Context, doc *interfaces.Document, profile interfaces.Profile) ([]interfaces.Issue, error) {
	s.profile = profile
	return s.issues[doc.FilePath], nil
}

func TestRunLintPassesCleanDirectory(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	docs := &stubDocs{
		documents: []*interfaces.Document{{FilePath: "clean.md"}},
	}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Docs:   docs,
			Logger: logging.NoOp(),
		}, nil
	}

	if err := runLint([]string{"--sections", "7", "--strict"}); err != nil {
		t.Fatalf("run lint: %v", err)
	}
	if docs.profile.NumberedSections != 7 {
		t.Fatalf("expected section flag forwarded, got %d", docs.profile.NumberedSections)
	}
	if !docs.profile.Strict {
		t.Fatal("expected strict flag forwarded")
	}
}

func TestRunLintFailsOnViolations(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	docs := &stubDocs{
		documents: []*interfaces.Document{{FilePath: "broken.md"}},
		issues: map[string][]interfaces.Issue{
			"broken.md": {{Code: "conclusion_missing", Message: "missing Conclusion section"}},
		},
	}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Docs:   docs,
			Logger: logging.NoOp(),
		}, nil
	}

	err := runLint(nil)
	if err == nil {
		t.Fatal("expected lint failure")
	}
	if !errors.Is(err, articles.ErrProfileViolated) {
		t.Fatalf("expected profile violation error, got %v", err)
	}
}
