package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleUUID returns the stable identifier for an article slug. Re-importing
// the same article always maps onto the same record.
func ArticleUUID(slug string) uuid.UUID {
	return UUID("go-article:article:" + strings.ToLower(strings.TrimSpace(slug)))
}

// AuthorUUID returns the stable identifier for an author display name.
func AuthorUUID(name string) uuid.UUID {
	return UUID("go-article:author:" + strings.ToLower(strings.TrimSpace(name)))
}
