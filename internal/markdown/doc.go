// Package markdown implements the document pipeline for frontmatter-bearing
// markdown articles: raw-preserving frontmatter splitting, metadata decoding,
// block extraction, structural linting, HTML rendering, and idempotent
// serialization.
package markdown
