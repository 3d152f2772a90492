package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MarkdownParser defines how raw markdown bytes are converted into HTML.
// Implementations should be reusable across calls so hosts can share a single
// instance without additional locking.
type MarkdownParser interface {
	// Parse converts markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// ArticleService exposes the high-level file workflows for frontmatter-bearing
// markdown articles: loading documents from disk, rendering their bodies into
// HTML, and checking them against a structural profile.
type ArticleService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	Lint(ctx context.Context, doc *Document, profile Profile) ([]Issue, error)
}

// Document represents a markdown article file with parsed metadata and
// content. Raw segments are preserved exactly as read so serialization can
// reproduce the source byte for byte.
type Document struct {
	FilePath    string
	FrontMatter FrontMatter
	// RawFrontMatter holds the frontmatter block including its delimiters,
	// exactly as it appeared in the source.
	RawFrontMatter []byte
	// Body holds the markdown body exactly as it appeared after the closing
	// frontmatter delimiter.
	Body         []byte
	BodyHTML     []byte
	Blocks       []Block
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so import
	// workflows can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models the canonical metadata header of an article. The three
// canonical fields are mirrored as typed values; everything else lands in
// Custom. Raw retains every decoded key for strict validation.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	PublishedAt string         `yaml:"publishedAt" json:"publishedAt"`
	Author      string         `yaml:"author" json:"author"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}

// BlockKind enumerates the markdown block types surfaced by the document
// block sequence.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockCodeFence BlockKind = "code_fence"
	BlockList      BlockKind = "list"
	BlockOther     BlockKind = "other"
)

// Block is one entry in the ordered block sequence of an article body.
type Block struct {
	Kind BlockKind
	// Level is the heading level (1-6) when Kind is BlockHeading.
	Level int
	// Text carries the plain-text content for headings and paragraphs.
	Text string
	// Language is the declared info-string language when Kind is BlockCodeFence.
	Language string
	// Literal is the raw fenced content when Kind is BlockCodeFence.
	Literal string
}

// Section is a heading-delimited region of the article outline.
type Section struct {
	Title string
	Level int
	// Number is the leading ordinal when the heading is numbered
	// ("3. Avoid Deep Nesting" yields 3), zero otherwise.
	Number int
	// Blocks counts the content blocks between this heading and the next.
	Blocks int
}

// Outline summarises the structure of an article body.
type Outline struct {
	Sections []Section
	// IntroBlocks counts the content blocks preceding the first section heading.
	IntroBlocks int
	// CodeFences lists every fenced code block in body order.
	CodeFences []Block
}

// Profile declares the structural rules an article body must satisfy.
type Profile struct {
	// NumberedSections requires exactly this many numbered `##` sections when
	// greater than zero, in ascending 1..N order.
	NumberedSections int
	// RequireIntro demands content before the first section heading.
	RequireIntro bool
	// RequireConclusion demands a trailing section titled ConclusionTitle.
	RequireConclusion bool
	// ConclusionTitle is the expected closing section title (default "Conclusion").
	ConclusionTitle string
	// RequireFenceLanguage demands a language tag on every fenced code block.
	RequireFenceLanguage bool
	// Strict reports frontmatter keys beyond the three canonical fields.
	Strict bool
}

// Issue describes a single structural or metadata violation.
type Issue struct {
	Code    string
	Message string
	// Section references the offending section title when applicable.
	Section string
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}

// ImportOptions controls how parsed documents are persisted into the article
// store.
type ImportOptions struct {
	// AuthorID attributes imported records when the frontmatter author cannot
	// be resolved to an existing identity.
	AuthorID uuid.UUID
	// DryRun collects the import outcome without persisting changes.
	DryRun bool
	// UpdateExisting overwrites stored articles whose checksum changed.
	UpdateExisting bool
	// Profile, when non-zero, gates imports on a clean structural lint.
	Profile *Profile
}

// ImportResult reports the outcome of an import run.
type ImportResult struct {
	CreatedIDs []uuid.UUID
	UpdatedIDs []uuid.UUID
	SkippedIDs []uuid.UUID
	Errors     []error
}
