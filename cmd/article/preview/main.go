package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-article/cmd/article/internal/bootstrap"
	"github.com/goliatone/go-article/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		articlesDir = flag.String("articles-dir", "articles", "Path to the article content root")
		pattern     = flag.String("pattern", "*.md", "Glob pattern applied when discovering article files")
		filePath    = flag.String("file", "", "Article file to preview (relative to the content root)")
		renderHTML  = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ArticlesDir: *articlesDir,
		Pattern:     *pattern,
		Recursive:   true,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	doc, err := module.Docs.Load(ctx, *filePath, interfaces.LoadOptions{})
	if err != nil {
		log.Fatalf("load article document: %v", err)
	}

	if *renderHTML {
		if _, err := module.Docs.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
			log.Fatalf("render article: %v", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nTitle: %s\nAuthor: %s\nPublished: %s\nChecksum: %x\n\n",
		doc.FilePath, doc.FrontMatter.Title, doc.FrontMatter.Author, doc.FrontMatter.PublishedAt, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}
