package markdown

import (
	"bytes"
	"errors"
)

var (
	// ErrMissingFrontMatter is returned when a document does not open with a
	// frontmatter fence.
	ErrMissingFrontMatter = errors.New("markdown: document has no frontmatter block")
	// ErrUnterminatedFrontMatter is returned when the opening fence is never
	// closed.
	ErrUnterminatedFrontMatter = errors.New("markdown: frontmatter block is not terminated")
)

var fence = []byte("---")

// SplitDocument separates a document into its raw frontmatter block and raw
// body. The frontmatter segment includes both delimiter lines and every byte
// between them; the body is everything after the closing delimiter line.
// Nothing is trimmed or normalised, so concatenating the two segments yields
// the original source exactly.
func SplitDocument(source []byte) (rawFrontMatter, body []byte, err error) {
	if !bytes.HasPrefix(source, fence) {
		return nil, nil, ErrMissingFrontMatter
	}

	rest := source[len(fence):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, nil, ErrUnterminatedFrontMatter
	}
	// The opening fence line may carry only trailing whitespace.
	if len(bytes.TrimSpace(rest[:nl])) != 0 {
		return nil, nil, ErrMissingFrontMatter
	}

	offset := len(fence) + nl + 1
	for offset <= len(source) {
		lineEnd := bytes.IndexByte(source[offset:], '\n')
		var line []byte
		if lineEnd < 0 {
			line = source[offset:]
		} else {
			line = source[offset : offset+lineEnd]
		}

		if isClosingFence(line) {
			if lineEnd < 0 {
				return source, nil, nil
			}
			cut := offset + lineEnd + 1
			return source[:cut], source[cut:], nil
		}

		if lineEnd < 0 {
			break
		}
		offset += lineEnd + 1
	}

	return nil, nil, ErrUnterminatedFrontMatter
}

func isClosingFence(line []byte) bool {
	if !bytes.HasPrefix(line, fence) {
		return false
	}
	return len(bytes.TrimSpace(line[len(fence):])) == 0
}
