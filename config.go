package article

import (
	"github.com/goliatone/go-article/internal/runtimeconfig"
	"github.com/goliatone/go-article/pkg/interfaces"
)

var (
	ErrMarkdownBasePathRequired = runtimeconfig.ErrMarkdownBasePathRequired
	ErrProfileSectionsInvalid   = runtimeconfig.ErrProfileSectionsInvalid
	ErrConclusionTitleRequired  = runtimeconfig.ErrConclusionTitleRequired
	ErrStorageProviderUnknown   = runtimeconfig.ErrStorageProviderUnknown
	ErrCacheTTLInvalid          = runtimeconfig.ErrCacheTTLInvalid
	ErrCommandsRequireStore     = runtimeconfig.ErrCommandsRequireStore
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	ProfileConfig        = runtimeconfig.ProfileConfig
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	Features             = runtimeconfig.Features
	CommandsConfig       = runtimeconfig.CommandsConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

// DefaultConfig returns opinionated defaults for a ten section article pipeline.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// DefaultProfile returns the structural profile enforced out of the box: an
// intro, ten numbered sections in ascending order, a closing Conclusion, and
// a language tag on every fenced code block.
func DefaultProfile() interfaces.Profile {
	return runtimeconfig.DefaultConfig().Profile.Profile()
}
