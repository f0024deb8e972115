package validation

import (
	"fmt"

	"github.com/jonathan/curriculum-lint/internal/markdown"
	"github.com/jonathan/curriculum-lint/internal/types"
)

// ValidateFormatting applies the three Markdown formatting rule sets to one
// file's content: heading-level continuity, code-fence correctness, and
// list-marker conventions. Marker-style consistency within a list is left
// to the authors.
func ValidateFormatting(file, content string) []types.Violation {
	var violations []types.Violation
	s := markdown.Extract(content)

	for _, mh := range s.MalformedHeadings {
		violations = append(violations, types.Violation{
			Category:   types.CategoryHeadingHierarchy,
			Severity:   types.SeverityError,
			File:       file,
			LineNumber: intPtr(mh.Line),
			Message:    "missing space after # symbols",
		})
	}

	prevLevel := 0
	for _, h := range s.Headings {
		if prevLevel > 0 && h.Level > prevLevel+1 {
			violations = append(violations, types.Violation{
				Category:   types.CategoryHeadingHierarchy,
				Severity:   types.SeverityError,
				File:       file,
				LineNumber: intPtr(h.Line),
				Message:    fmt.Sprintf("heading level skipped: level %d follows level %d (%q)", h.Level, prevLevel, h.Text),
			})
		}
		prevLevel = h.Level
	}

	for _, cb := range s.CodeBlocks {
		if cb.EndLine == 0 {
			violations = append(violations, types.Violation{
				Category:   types.CategoryCodeBlock,
				Severity:   types.SeverityError,
				File:       file,
				LineNumber: intPtr(cb.StartLine),
				Message:    "Code block opened but never closed",
			})
			continue
		}
		if cb.TrailingOnFence {
			violations = append(violations, types.Violation{
				Category:   types.CategoryCodeBlock,
				Severity:   types.SeverityError,
				File:       file,
				LineNumber: intPtr(cb.EndLine),
				Message:    "closing code fence has trailing characters",
			})
		}
		if cb.LanguageTag == "" {
			violations = append(violations, types.Violation{
				Category:   types.CategoryCodeBlock,
				Severity:   types.SeverityWarning,
				File:       file,
				LineNumber: intPtr(cb.StartLine),
				Message:    "code block is missing a language tag",
			})
		}
	}

	for _, item := range s.ListItems {
		if !item.SpaceAfterMarker {
			violations = append(violations, types.Violation{
				Category:   types.CategoryListFormatting,
				Severity:   types.SeverityError,
				File:       file,
				LineNumber: intPtr(item.Line),
				Message:    fmt.Sprintf("list marker %q is not followed by a space", item.Marker),
			})
		}
		if item.Indent%2 != 0 {
			violations = append(violations, types.Violation{
				Category:   types.CategoryListFormatting,
				Severity:   types.SeverityWarning,
				File:       file,
				LineNumber: intPtr(item.Line),
				Message:    fmt.Sprintf("list indentation of %d is not a multiple of 2", item.Indent),
			})
		}
	}

	return violations
}
