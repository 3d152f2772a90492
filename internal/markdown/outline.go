package markdown

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-article/pkg/interfaces"
)

// Issue codes reported by Lint. Codes are stable identifiers so callers can
// branch on them without string matching on messages.
const (
	IssueIntroMissing        = "intro_missing"
	IssueSectionCount        = "numbered_section_count"
	IssueSectionOrder        = "numbered_section_order"
	IssueConclusionMissing   = "conclusion_missing"
	IssueFenceLanguage       = "fence_language_missing"
	IssueFrontMatterExtraKey = "frontmatter_extra_key"
)

// DefaultConclusionTitle is the closing section title expected when a profile
// does not override it.
const DefaultConclusionTitle = "Conclusion"

// canonicalFrontMatterKeys are the only keys a strict profile accepts.
var canonicalFrontMatterKeys = map[string]struct{}{
	"title":       {},
	"publishedAt": {},
	"author":      {},
}

// BuildOutline derives the section outline from an ordered block sequence.
// Sections are delimited by level-2 headings; content before the first one is
// counted as the introduction.
func BuildOutline(blocks []interfaces.Block) interfaces.Outline {
	outline := interfaces.Outline{}
	current := -1

	for _, block := range blocks {
		if block.Kind == interfaces.BlockCodeFence {
			outline.CodeFences = append(outline.CodeFences, block)
		}

		if block.Kind == interfaces.BlockHeading && block.Level == 2 {
			outline.Sections = append(outline.Sections, interfaces.Section{
				Title:  strings.TrimSpace(block.Text),
				Level:  block.Level,
				Number: headingNumber(block.Text),
			})
			current = len(outline.Sections) - 1
			continue
		}

		if current < 0 {
			outline.IntroBlocks++
		} else {
			outline.Sections[current].Blocks++
		}
	}

	return outline
}

// Lint checks a document against the supplied structural profile and returns
// every violation found. A nil slice means the document satisfies the profile.
func Lint(doc *interfaces.Document, profile interfaces.Profile) []interfaces.Issue {
	if doc == nil {
		return nil
	}

	outline := BuildOutline(doc.Blocks)
	var issues []interfaces.Issue

	if profile.RequireIntro && outline.IntroBlocks == 0 {
		issues = append(issues, interfaces.Issue{
			Code:    IssueIntroMissing,
			Message: "document has no introduction before its first section heading",
		})
	}

	if profile.NumberedSections > 0 {
		issues = append(issues, lintNumberedSections(outline, profile.NumberedSections)...)
	}

	if profile.RequireConclusion {
		title := profile.ConclusionTitle
		if strings.TrimSpace(title) == "" {
			title = DefaultConclusionTitle
		}
		if !hasClosingSection(outline, title) {
			issues = append(issues, interfaces.Issue{
				Code:    IssueConclusionMissing,
				Message: fmt.Sprintf("document does not end with a %q section", title),
			})
		}
	}

	if profile.RequireFenceLanguage {
		for _, fence := range outline.CodeFences {
			if strings.TrimSpace(fence.Language) == "" {
				issues = append(issues, interfaces.Issue{
					Code:    IssueFenceLanguage,
					Message: "fenced code block does not declare a language tag",
				})
			}
		}
	}

	if profile.Strict {
		issues = append(issues, lintExtraKeys(doc.FrontMatter.Raw)...)
	}

	return issues
}

func lintNumberedSections(outline interfaces.Outline, want int) []interfaces.Issue {
	var numbered []interfaces.Section
	for _, section := range outline.Sections {
		if section.Number > 0 {
			numbered = append(numbered, section)
		}
	}

	var issues []interfaces.Issue
	if len(numbered) != want {
		issues = append(issues, interfaces.Issue{
			Code:    IssueSectionCount,
			Message: fmt.Sprintf("expected %d numbered sections, found %d", want, len(numbered)),
		})
	}

	for i, section := range numbered {
		if section.Number != i+1 {
			issues = append(issues, interfaces.Issue{
				Code:    IssueSectionOrder,
				Message: fmt.Sprintf("section %q is numbered %d, expected %d", section.Title, section.Number, i+1),
				Section: section.Title,
			})
			break
		}
	}

	return issues
}

func hasClosingSection(outline interfaces.Outline, title string) bool {
	if len(outline.Sections) == 0 {
		return false
	}
	last := outline.Sections[len(outline.Sections)-1]
	return strings.EqualFold(last.Title, title)
}

func lintExtraKeys(raw map[string]any) []interfaces.Issue {
	if len(raw) == 0 {
		return nil
	}

	extras := make([]string, 0)
	for key := range raw {
		if _, ok := canonicalFrontMatterKeys[key]; !ok {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)

	issues := make([]interfaces.Issue, 0, len(extras))
	for _, key := range extras {
		issues = append(issues, interfaces.Issue{
			Code:    IssueFrontMatterExtraKey,
			Message: fmt.Sprintf("frontmatter key %q is not one of title, publishedAt, author", key),
		})
	}
	return issues
}

// headingNumber extracts the leading ordinal of a numbered heading such as
// "3. Avoid Deep Nesting" or "3) Avoid Deep Nesting". Zero means unnumbered.
func headingNumber(title string) int {
	trimmed := strings.TrimSpace(title)
	cut := strings.IndexAny(trimmed, ".)")
	if cut <= 0 {
		return 0
	}
	number, err := strconv.Atoi(trimmed[:cut])
	if err != nil || number <= 0 {
		return 0
	}
	return number
}
