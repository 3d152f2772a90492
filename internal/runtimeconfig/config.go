package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-article/pkg/interfaces"
)

var (
	ErrMarkdownBasePathRequired = errors.New("article config: markdown base path is required")
	ErrProfileSectionsInvalid   = errors.New("article config: profile numbered section count cannot be negative")
	ErrConclusionTitleRequired  = errors.New("article config: conclusion title is required when a conclusion is enforced")
	ErrStorageProviderUnknown   = errors.New("article config: storage provider is invalid")
	ErrCacheTTLInvalid          = errors.New("article config: cache ttl cannot be negative")
	ErrCommandsRequireStore     = errors.New("article config: commands feature requires the store feature")
	ErrLoggingProviderRequired  = errors.New("article config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown   = errors.New("article config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("article config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("article config: logging format is invalid")
)

// Config is the root runtime configuration for the article module.
type Config struct {
	Markdown MarkdownConfig
	Profile  ProfileConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Features Features
	Commands CommandsConfig
	Logging  LoggingConfig
}

// MarkdownConfig captures filesystem and parser behaviour for article ingestion.
type MarkdownConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// ProfileConfig declares the structural rules imported articles must satisfy.
type ProfileConfig struct {
	NumberedSections     int
	RequireIntro         bool
	RequireConclusion    bool
	ConclusionTitle      string
	RequireFenceLanguage bool
	Strict               bool
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Provider string
}

// CacheConfig controls the read-through repository cache.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// Features toggles optional subsystems.
type Features struct {
	Store    bool
	Commands bool
	Logger   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Profile converts the configured rules into the lint profile used by the
// document pipeline.
func (p ProfileConfig) Profile() interfaces.Profile {
	title := strings.TrimSpace(p.ConclusionTitle)
	if title == "" {
		title = "Conclusion"
	}
	return interfaces.Profile{
		NumberedSections:     p.NumberedSections,
		RequireIntro:         p.RequireIntro,
		RequireConclusion:    p.RequireConclusion,
		ConclusionTitle:      title,
		RequireFenceLanguage: p.RequireFenceLanguage,
		Strict:               p.Strict,
	}
}

// ParseOptions converts the configured parser settings into the options used
// by the markdown renderer.
func (p MarkdownParserConfig) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: p.Extensions,
		Sanitize:   p.Sanitize,
		HardWraps:  p.HardWraps,
		SafeMode:   p.SafeMode,
	}
}

// DefaultConfig returns opinionated defaults for a ten section article pipeline.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			BasePath:  "articles",
			Pattern:   "*.md",
			Recursive: true,
		},
		Profile: ProfileConfig{
			NumberedSections:     10,
			RequireIntro:         true,
			RequireConclusion:    true,
			ConclusionTitle:      "Conclusion",
			RequireFenceLanguage: true,
		},
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Markdown.BasePath) == "" {
		return ErrMarkdownBasePathRequired
	}
	if cfg.Profile.NumberedSections < 0 {
		return ErrProfileSectionsInvalid
	}
	if cfg.Profile.RequireConclusion && strings.TrimSpace(cfg.Profile.ConclusionTitle) == "" {
		return ErrConclusionTitleRequired
	}
	if cfg.Features.Store {
		if provider := normalizeProvider(cfg.Storage.Provider); provider != "bun" {
			return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
		}
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Commands.Enabled && !cfg.Features.Store {
		return ErrCommandsRequireStore
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
