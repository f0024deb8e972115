package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/curriculum-lint/internal/config"
	"github.com/jonathan/curriculum-lint/internal/markdown"
	"github.com/jonathan/curriculum-lint/internal/types"
)

// readLessonFile reads one file under root. A read failure is converted
// into a file-access violation so the run continues with remaining files.
func readLessonFile(root, relPath string) (string, *types.Violation) {
	data, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		return "", &types.Violation{
			Category: types.CategoryFileAccess,
			Severity: types.SeverityError,
			File:     relPath,
			Message:  fmt.Sprintf("cannot read file: %v", err),
		}
	}
	return string(data), nil
}

// ValidateParallelStructure checks that both files of each bilingual pair
// carry the same heading level sequence. Heading text is allowed to differ
// between languages; count and levels must match position by position.
func ValidateParallelStructure(root string, pairs []BilingualPair) []types.Violation {
	var violations []types.Violation

	for _, pair := range pairs {
		primary, v := readLessonFile(root, pair.PrimaryPath)
		if v != nil {
			violations = append(violations, *v)
			continue
		}
		secondary, v := readLessonFile(root, pair.SecondaryPath)
		if v != nil {
			violations = append(violations, *v)
			continue
		}

		ph := markdown.Extract(primary).Headings
		sh := markdown.Extract(secondary).Headings

		if len(ph) != len(sh) {
			violations = append(violations, types.Violation{
				Category: types.CategoryParallelStructure,
				Severity: types.SeverityError,
				File:     pair.SecondaryPath,
				Message:  fmt.Sprintf("heading count mismatch: %s has %d headings, %s has %d", pair.PrimaryPath, len(ph), pair.SecondaryPath, len(sh)),
			})
			continue
		}

		for i := range ph {
			if ph[i].Level != sh[i].Level {
				violations = append(violations, types.Violation{
					Category:   types.CategoryParallelStructure,
					Severity:   types.SeverityError,
					File:       pair.SecondaryPath,
					LineNumber: intPtr(sh[i].Line),
					Message: fmt.Sprintf("heading level mismatch at position %d: %q is level %d in %s but %q is level %d in %s",
						i, ph[i].Text, ph[i].Level, pair.PrimaryPath, sh[i].Text, sh[i].Level, pair.SecondaryPath),
				})
			}
		}
	}

	return violations
}

// ValidateLanguageLinks checks that each file of a pair references its
// counterpart: the default-language file must link to the alternate file,
// and the alternate file must link back and carry a language-switch link
// (a link labeled with one of the known language names).
func ValidateLanguageLinks(root string, pairs []BilingualPair, cfg *config.Config) []types.Violation {
	var violations []types.Violation

	for _, pair := range pairs {
		primary, v := readLessonFile(root, pair.PrimaryPath)
		if v != nil {
			violations = append(violations, *v)
			continue
		}
		secondary, v := readLessonFile(root, pair.SecondaryPath)
		if v != nil {
			violations = append(violations, *v)
			continue
		}

		primaryDoc := markdown.Extract(primary)
		secondaryDoc := markdown.Extract(secondary)

		if !linksToSibling(primaryDoc, cfg.SecondaryFile) {
			violations = append(violations, types.Violation{
				Category: types.CategoryLanguageLink,
				Severity: types.SeverityError,
				File:     pair.PrimaryPath,
				Message:  fmt.Sprintf("missing link to the alternate-language file %s", cfg.SecondaryFile),
			})
		}

		if !linksToSibling(secondaryDoc, cfg.PrimaryFile) {
			violations = append(violations, types.Violation{
				Category: types.CategoryLanguageLink,
				Severity: types.SeverityError,
				File:     pair.SecondaryPath,
				Message:  fmt.Sprintf("missing link back to the default-language file %s", cfg.PrimaryFile),
			})
		}

		if !hasLanguageSwitch(secondaryDoc) {
			violations = append(violations, types.Violation{
				Category: types.CategoryLanguageLink,
				Severity: types.SeverityError,
				File:     pair.SecondaryPath,
				Message:  "missing language-switch link (a link labeled with a language name)",
			})
		}
	}

	return violations
}

// linksToSibling reports whether the document carries a link to a file of
// the given name in the same directory. Navigation links leaving the
// directory ("../README.md") share the counterpart's basename and must not
// satisfy the check, so the cleaned target has to equal the name exactly.
func linksToSibling(doc *markdown.Structure, filename string) bool {
	for _, link := range doc.Links {
		target := strings.SplitN(link.Target, "#", 2)[0]
		target = strings.TrimPrefix(target, "./")
		if target == filename {
			return true
		}
	}
	return false
}

func hasLanguageSwitch(doc *markdown.Structure) bool {
	for _, link := range doc.Links {
		if config.MatchLanguageLabel(link.Text) {
			return true
		}
	}
	return false
}

// ValidateRequiredSections checks that every lesson file carries the
// mandatory section headings (in either language) plus at least one of the
// either-group sections.
func ValidateRequiredSections(root string, files []string) []types.Violation {
	var violations []types.Violation

	for _, file := range files {
		content, v := readLessonFile(root, file)
		if v != nil {
			violations = append(violations, *v)
			continue
		}

		present := make(map[string]bool)
		for _, h := range markdown.Extract(content).Headings {
			if id, ok := config.MatchSection(h.Text); ok {
				present[id] = true
			}
		}

		for _, id := range config.MandatorySections {
			if !present[id] {
				violations = append(violations, types.Violation{
					Category: types.CategoryRequiredSection,
					Severity: types.SeverityError,
					File:     file,
					Message:  fmt.Sprintf("missing required section %q (accepted headings: %s)", id, strings.Join(config.SectionLabels(id), ", ")),
				})
			}
		}

		anyEither := false
		for _, id := range config.EitherSections {
			if present[id] {
				anyEither = true
				break
			}
		}
		if !anyEither {
			var accepted []string
			for _, id := range config.EitherSections {
				accepted = append(accepted, config.SectionLabels(id)...)
			}
			violations = append(violations, types.Violation{
				Category: types.CategoryRequiredSection,
				Severity: types.SeverityError,
				File:     file,
				Message:  fmt.Sprintf("missing at least one of the sections: %s", strings.Join(accepted, ", ")),
			})
		}
	}

	return violations
}
