package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-article/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestDefaultConfigProfile(t *testing.T) {
	profile := runtimeconfig.DefaultConfig().Profile.Profile()
	if profile.NumberedSections != 10 {
		t.Fatalf("expected 10 numbered sections, got %d", profile.NumberedSections)
	}
	if !profile.RequireIntro || !profile.RequireConclusion || !profile.RequireFenceLanguage {
		t.Fatalf("expected structural checks enabled, got %+v", profile)
	}
	if profile.ConclusionTitle != "Conclusion" {
		t.Fatalf("expected default conclusion title, got %q", profile.ConclusionTitle)
	}
}

func TestConfigValidate_RequiresMarkdownBasePath(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.BasePath = "   "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrMarkdownBasePathRequired) {
		t.Fatalf("expected ErrMarkdownBasePathRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeSectionCount(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Profile.NumberedSections = -1

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrProfileSectionsInvalid) {
		t.Fatalf("expected ErrProfileSectionsInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresConclusionTitle(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Profile.ConclusionTitle = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrConclusionTitleRequired) {
		t.Fatalf("expected ErrConclusionTitleRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Store = true
	cfg.Storage.Provider = "postgres"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_CommandsRequireStore(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCommandsRequireStore) {
		t.Fatalf("expected ErrCommandsRequireStore, got %v", err)
	}

	cfg.Features.Store = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected commands with store to validate, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
