package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	article "github.com/goliatone/go-article"
	"github.com/goliatone/go-article/articles"
	articlecmd "github.com/goliatone/go-article/internal/commands/articles"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/pkg/interfaces"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Options captures configuration for article CLI bootstraps.
type Options struct {
	ArticlesDir     string
	Pattern         string
	Recursive       bool
	Sections        int
	ConclusionTitle string
	Strict          bool
	DSN             string
	WithStore       bool
	LoggerProvider  interfaces.LoggerProvider
}

// Module wraps the article module plus the collaborators the CLIs use. Store
// is surfaced through the command-facing contract so CLI tests can stub it.
type Module struct {
	Module *article.Module
	Docs   article.DocumentService
	Store  articlecmd.ImportService
	Logger interfaces.Logger
	DB     *bun.DB
}

// BuildModule constructs an article module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := article.DefaultConfig()
	cfg.Markdown.BasePath = strings.TrimSpace(opts.ArticlesDir)
	if cfg.Markdown.BasePath == "" {
		cfg.Markdown.BasePath = "articles"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive

	if opts.Sections > 0 {
		cfg.Profile.NumberedSections = opts.Sections
	}
	if trimmed := strings.TrimSpace(opts.ConclusionTitle); trimmed != "" {
		cfg.Profile.ConclusionTitle = trimmed
	}
	cfg.Profile.Strict = opts.Strict

	moduleOpts := []article.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, article.WithLoggerProvider(opts.LoggerProvider))
	}

	var bunDB *bun.DB
	if opts.WithStore {
		cfg.Features.Store = true

		db, err := OpenDatabase(opts.DSN)
		if err != nil {
			return nil, err
		}
		bunDB = db
		moduleOpts = append(moduleOpts, article.WithBunDB(bunDB))
	}

	module, err := article.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise article module: %w", err)
	}

	logger := logging.MarkdownLogger(module.LoggerProvider())

	built := &Module{
		Module: module,
		Docs:   module.Documents(),
		Logger: logger,
		DB:     bunDB,
	}
	if store := module.Store(); store != nil {
		built.Store = store
	}
	return built, nil
}

// OpenDatabase opens a sqlite-backed bun database and ensures the article
// table exists.
func OpenDatabase(dsn string) (*bun.DB, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		trimmed = "file:articles.db"
	}

	sqlDB, err := sql.Open("sqlite3", trimmed)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().
		Model((*articles.Article)(nil)).
		IfNotExists().
		Exec(context.Background()); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("create articles table: %w", err)
	}
	return bunDB, nil
}

// ParseUUID converts the supplied string into a UUID, returning uuid.Nil when the input is empty.
func ParseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(trimmed)
}
