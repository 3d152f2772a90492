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
	if err := runLint(os.Args[1:]); err != nil {
		log.Fatalf("article lint: %v", err)
	}
}

func runLint(args []string) error {
	fs := flag.NewFlagSet("article-lint", flag.ExitOnError)
	articlesDir := fs.String("articles-dir", "articles", "Path to the article content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering article files")
	directory := fs.String("directory", ".", "Directory to lint, relative to the content root")
	sections := fs.Int("sections", 10, "Number of numbered sections each article must contain")
	conclusionTitle := fs.String("conclusion-title", "Conclusion", "Expected title of the closing section")
	strict := fs.Bool("strict", false, "Reject frontmatter keys beyond title, publishedAt, and author")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ArticlesDir:     *articlesDir,
		Pattern:         *pattern,
		Recursive:       true,
		Sections:        *sections,
		ConclusionTitle: *conclusionTitle,
		Strict:          *strict,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := articlecmd.NewLintDirectoryHandler(module.Docs, module.Logger)
	cmd := articlecmd.LintDirectoryCommand{
		Directory: *directory,
		Profile: interfaces.Profile{
			NumberedSections:     *sections,
			RequireIntro:         true,
			RequireConclusion:    true,
			ConclusionTitle:      *conclusionTitle,
			RequireFenceLanguage: true,
			Strict:               *strict,
		},
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute lint command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "article lint passed")
	return nil
}
