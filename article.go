// Package article is an embeddable toolkit for frontmatter-bearing markdown
// blog articles. It loads documents from disk, validates their metadata and
// structure against a configurable profile, renders their bodies to HTML, and
// optionally persists them into a bun-backed store.
package article

import (
	"errors"
	"io/fs"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-article/articles"
	articlecmd "github.com/goliatone/go-article/internal/commands/articles"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/internal/logging/gologger"
	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// ErrStoreRequiresDatabase is returned when the store feature is enabled but
// no database or repository was supplied.
var ErrStoreRequiresDatabase = errors.New("article: store feature requires a bun database or repository")

// DocumentService exports the filesystem document contract for consumers.
type DocumentService = interfaces.ArticleService

// StoreService exports the persistence-facing service contract.
type StoreService = articles.Service

// Document exports the parsed document DTO.
type Document = interfaces.Document

// Profile exports the structural lint profile.
type Profile = interfaces.Profile

// Issue exports a single structural or metadata violation.
type Issue = interfaces.Issue

// ImportDirectoryCommand exports the directory import command message.
type ImportDirectoryCommand = articlecmd.ImportDirectoryCommand

// LintDirectoryCommand exports the directory lint command message.
type LintDirectoryCommand = articlecmd.LintDirectoryCommand

// CommandRegistry exports the registration contract used by RegisterCommands.
type CommandRegistry = articlecmd.CommandRegistry

// HandlerSet exports the constructed command handlers.
type HandlerSet = articlecmd.HandlerSet

// Module is the top level article runtime facade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	docs     *markdown.Service
	store    *articles.Service
}

// Option customises module construction.
type Option func(*moduleDeps)

type moduleDeps struct {
	db            *bun.DB
	repo          articles.ArticleRepository
	provider      interfaces.LoggerProvider
	parser        interfaces.MarkdownParser
	filesystem    fs.FS
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
}

// WithBunDB supplies the database used by the article store.
func WithBunDB(db *bun.DB) Option {
	return func(d *moduleDeps) {
		d.db = db
	}
}

// WithRepository overrides the article repository, bypassing bun wiring.
func WithRepository(repo articles.ArticleRepository) Option {
	return func(d *moduleDeps) {
		d.repo = repo
	}
}

// WithCacheService supplies the cache collaborators used to wrap the article
// repository instead of building them from the cache configuration.
func WithCacheService(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(d *moduleDeps) {
		d.cacheService = service
		d.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.provider = provider
	}
}

// WithParser overrides the markdown parser used for rendering.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(d *moduleDeps) {
		d.parser = parser
	}
}

// WithFS mounts the document service on an explicit filesystem instead of the
// configured base path. Mostly used by tests and embedded content.
func WithFS(filesystem fs.FS) Option {
	return func(d *moduleDeps) {
		d.filesystem = filesystem
	}
}

// New constructs an article module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := moduleDeps{}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	provider, err := buildProvider(cfg, deps)
	if err != nil {
		return nil, err
	}

	docs, err := buildDocumentService(cfg, deps)
	if err != nil {
		return nil, err
	}

	m := &Module{
		cfg:      cfg,
		provider: provider,
		docs:     docs,
	}

	if cfg.Features.Store {
		repo := deps.repo
		if repo == nil {
			if deps.db == nil {
				return nil, ErrStoreRequiresDatabase
			}
			cacheService, keySerializer := buildRepositoryCache(cfg, deps)
			repo = articles.NewBunArticleRepositoryWithCache(deps.db, cacheService, keySerializer)
		}

		store, err := articles.NewService(docs, repo,
			articles.WithLogger(logging.ArticlesLogger(provider)),
		)
		if err != nil {
			return nil, err
		}
		m.store = store
	}

	return m, nil
}

// Documents returns the filesystem document service.
func (m *Module) Documents() DocumentService {
	return m.docs
}

// Store returns the persistence-facing article service, nil when the store
// feature is disabled.
func (m *Module) Store() *StoreService {
	if m == nil {
		return nil
	}
	return m.store
}

// Profile returns the structural profile built from configuration.
func (m *Module) Profile() interfaces.Profile {
	return m.cfg.Profile.Profile()
}

// LoggerProvider exposes the provider used for module loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// RegisterCommands wires the import and lint command handlers into the
// supplied registry. The store feature must be enabled.
func (m *Module) RegisterCommands(reg CommandRegistry, opts ...articlecmd.Option) (*HandlerSet, error) {
	if m.store == nil {
		return nil, ErrStoreRequiresDatabase
	}
	return articlecmd.RegisterArticleCommands(reg, m.store, m.docs, m.provider, opts...)
}

func buildRepositoryCache(cfg Config, deps moduleDeps) (repocache.CacheService, repocache.KeySerializer) {
	cacheService := deps.cacheService
	keySerializer := deps.keySerializer
	if !cfg.Cache.Enabled {
		return cacheService, keySerializer
	}
	if cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if cfg.Cache.DefaultTTL > 0 {
			cacheCfg.TTL = cfg.Cache.DefaultTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err != nil {
			return nil, nil
		}
		cacheService = service
	}
	if keySerializer == nil {
		keySerializer = repocache.NewDefaultKeySerializer()
	}
	return cacheService, keySerializer
}

func buildProvider(cfg Config, deps moduleDeps) (interfaces.LoggerProvider, error) {
	if deps.provider != nil {
		return deps.provider, nil
	}
	if !cfg.Features.Logger {
		return nil, nil
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
}

func buildDocumentService(cfg Config, deps moduleDeps) (*markdown.Service, error) {
	serviceCfg := markdown.Config{
		BasePath:  cfg.Markdown.BasePath,
		Pattern:   cfg.Markdown.Pattern,
		Recursive: cfg.Markdown.Recursive,
		Parser:    cfg.Markdown.Parser.ParseOptions(),
	}
	if deps.filesystem != nil {
		return markdown.NewServiceWithFS(serviceCfg, deps.parser, deps.filesystem), nil
	}
	return markdown.NewService(serviceCfg, deps.parser)
}
