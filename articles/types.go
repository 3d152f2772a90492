package articles

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Article is the persisted record for an imported markdown article. The raw
// source is stored verbatim so serving a stored article reproduces the file
// byte for byte.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID    uuid.UUID `bun:",pk,type:uuid"        json:"id"`
	Slug  string    `bun:"slug,notnull,unique"  json:"slug"`
	Title string    `bun:"title,notnull"        json:"title"`
	// Author holds the frontmatter author display name.
	Author string `bun:"author,notnull" json:"author"`
	// AuthorID is derived deterministically from the author name.
	AuthorID uuid.UUID `bun:"author_id,notnull,type:uuid" json:"author_id"`
	// PublishedAt is the parsed calendar date; PublishedAtRaw preserves the
	// exact frontmatter string for round-trip output.
	PublishedAt    time.Time `bun:"published_at,notnull"     json:"published_at"`
	PublishedAtRaw string    `bun:"published_at_raw,notnull" json:"published_at_raw"`
	SourcePath     string    `bun:"source_path,notnull"      json:"source_path"`
	// Checksum is the SHA-256 digest of Source, used to skip unchanged imports.
	Checksum  []byte    `bun:"checksum,notnull"  json:"checksum"`
	Source    []byte    `bun:"source,notnull"    json:"-"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
