package articlecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-article/pkg/interfaces"
)

const (
	importDirectoryMessageType = "article.import_directory"
	lintDirectoryMessageType   = "article.lint_directory"
)

// ImportDirectoryCommand triggers a filesystem walk for article documents
// under the provided Directory and persists them into the article store. The
// options map directly onto interfaces.ImportOptions.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load article files from.
	Directory string `json:"directory"`
	// AuthorID overrides the author identity recorded on imported records.
	AuthorID uuid.UUID `json:"author_id,omitempty"`
	// DryRun toggles preview mode to collect the import outcome without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// UpdateExisting overwrites stored articles whose source document changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
	// Profile gates imports on a clean structural lint when provided.
	Profile *interfaces.Profile `json:"profile,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("article.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// LintDirectoryCommand checks every article document under Directory against
// the supplied structural profile without touching the store.
type LintDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) to load article files from.
	Directory string `json:"directory"`
	// Profile declares the structural rules to enforce.
	Profile interfaces.Profile `json:"profile"`
}

// Type implements command.Message.
func (LintDirectoryCommand) Type() string { return lintDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd LintDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("article.lint_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
