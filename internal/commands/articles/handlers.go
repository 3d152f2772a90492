package articlecmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-article/articles"
	"github.com/goliatone/go-article/internal/commands"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

const (
	importOperation = "article.import_directory"
	lintOperation   = "article.lint_directory"
)

var (
	_ command.Commander[ImportDirectoryCommand] = (*ImportDirectoryHandler)(nil)
	_ command.Commander[LintDirectoryCommand]   = (*LintDirectoryHandler)(nil)
)

// ImportService captures the article store behaviour the import handler
// relies on. *articles.Service satisfies it.
type ImportService interface {
	ImportDirectory(ctx context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error)
}

// ImportDirectoryHandler orchestrates article directory imports via the shared
// command handler foundation.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied article service.
func NewImportDirectoryHandler(service ImportService, logger interfaces.Logger, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		if service == nil {
			return articles.ErrRepositoryRequired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.ImportDirectory(ctx, msg.Directory, interfaces.ImportOptions{
			AuthorID:       msg.AuthorID,
			DryRun:         msg.DryRun,
			UpdateExisting: msg.UpdateExisting,
			Profile:        msg.Profile,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.CreatedIDs),
				"updated_count": len(result.UpdatedIDs),
				"skipped_count": len(result.SkippedIDs),
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("article.command.import_directory.completed")

			if len(result.Errors) > 0 {
				return errors.Join(result.Errors...)
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](baseLogger),
		commands.WithOperation[ImportDirectoryCommand](importOperation),
		commands.WithMessageFields(func(msg ImportDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.AuthorID != uuid.Nil {
				fields["author_id"] = msg.AuthorID
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportDirectoryCommand].
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LintDirectoryHandler checks article documents against a structural profile
// via the shared command handler foundation. It never writes to the store.
type LintDirectoryHandler struct {
	inner *commands.Handler[LintDirectoryCommand]
}

// NewLintDirectoryHandler creates a handler bound to the supplied document service.
func NewLintDirectoryHandler(docs interfaces.ArticleService, logger interfaces.Logger, opts ...commands.HandlerOption[LintDirectoryCommand]) *LintDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg LintDirectoryCommand) error {
		if docs == nil {
			return articles.ErrDocumentsRequired
		}

		documents, err := docs.LoadDirectory(ctx, msg.Directory, interfaces.LoadOptions{})
		if err != nil {
			return err
		}

		var failures []error
		clean := 0
		for _, doc := range documents {
			issues, err := docs.Lint(ctx, doc, msg.Profile)
			if err != nil {
				failures = append(failures, err)
				continue
			}
			if len(issues) == 0 {
				clean++
				continue
			}
			logging.WithFields(baseLogger, map[string]any{
				"path":        doc.FilePath,
				"issue_count": len(issues),
			}).Warn("article.command.lint_directory.violations")
			failures = append(failures, &articles.ProfileViolationError{
				Path:   doc.FilePath,
				Issues: issues,
			})
		}

		logging.WithFields(baseLogger, map[string]any{
			"document_count": len(documents),
			"clean_count":    clean,
			"failed_count":   len(failures),
		}).Info("article.command.lint_directory.completed")

		if len(failures) > 0 {
			return errors.Join(failures...)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintDirectoryCommand]{
		commands.WithLogger[LintDirectoryCommand](baseLogger),
		commands.WithOperation[LintDirectoryCommand](lintOperation),
		commands.WithMessageFields(func(msg LintDirectoryCommand) map[string]any {
			return map[string]any{
				"directory": msg.Directory,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LintDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[LintDirectoryCommand].
func (h *LintDirectoryHandler) Execute(ctx context.Context, msg LintDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
