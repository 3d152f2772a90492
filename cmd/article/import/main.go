package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-article/cmd/article/internal/bootstrap"
	articlecmd "github.com/goliatone/go-article/internal/commands/articles"
	"github.com/goliatone/go-article/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("article import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("article-import", flag.ExitOnError)
	articlesDir := fs.String("articles-dir", "articles", "Path to the article content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering article files")
	directory := fs.String("directory", ".", "Directory to import, relative to the content root")
	dsn := fs.String("db", "file:articles.db", "SQLite DSN backing the article store")
	author := fs.String("author", "", "Author ID recorded on imported articles")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting articles")
	updateExisting := fs.Bool("update-existing", false, "Overwrite stored articles whose source changed")
	enforceProfile := fs.Bool("enforce-profile", true, "Require a clean structural lint before importing")
	sections := fs.Int("sections", 10, "Number of numbered sections each article must contain")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ArticlesDir: *articlesDir,
		Pattern:     *pattern,
		Recursive:   true,
		Sections:    *sections,
		DSN:         *dsn,
		WithStore:   true,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Store == nil {
		return fmt.Errorf("article store not configured; ensure Features.Store is enabled")
	}

	authorID, err := bootstrap.ParseUUID(*author)
	if err != nil {
		return fmt.Errorf("parse author: %w", err)
	}

	cmd := articlecmd.ImportDirectoryCommand{
		Directory:      *directory,
		AuthorID:       authorID,
		DryRun:         *dryRun,
		UpdateExisting: *updateExisting,
	}
	if *enforceProfile {
		profile := interfaces.Profile{
			NumberedSections:     *sections,
			RequireIntro:         true,
			RequireConclusion:    true,
			ConclusionTitle:      "Conclusion",
			RequireFenceLanguage: true,
		}
		cmd.Profile = &profile
	}

	handler := articlecmd.NewImportDirectoryHandler(module.Store, module.Logger)
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "article import command executed successfully")
	return nil
}
