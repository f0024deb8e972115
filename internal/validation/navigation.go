package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/curriculum-lint/internal/config"
	"github.com/jonathan/curriculum-lint/internal/markdown"
	"github.com/jonathan/curriculum-lint/internal/types"
	"github.com/jonathan/curriculum-lint/internal/walker"
)

// NavigationLinks holds the three labeled links a lesson file may carry.
// A nil entry means the link is absent.
type NavigationLinks struct {
	Previous   *markdown.Link
	Next       *markdown.Link
	ModuleHome *markdown.Link
}

// ExtractNavigationLinks scans content for links whose text starts with a
// localized Previous/Next/Module-Home label. The first match per label
// wins.
func ExtractNavigationLinks(content string) NavigationLinks {
	var nav NavigationLinks
	for _, link := range markdown.Extract(content).Links {
		id, ok := config.MatchNavLabel(link.Text)
		if !ok {
			continue
		}
		l := link
		switch id {
		case config.NavPrevious:
			if nav.Previous == nil {
				nav.Previous = &l
			}
		case config.NavNext:
			if nav.Next == nil {
				nav.Next = &l
			}
		case config.NavModuleHome:
			if nav.ModuleHome == nil {
				nav.ModuleHome = &l
			}
		}
	}
	return nav
}

// TargetLessonDir extracts the lesson-directory component from a link
// target such as "../01-fundamentals/README.md". Returns "" when no path
// segment follows the lesson naming convention.
func TargetLessonDir(target string) string {
	target = strings.SplitN(target, "#", 2)[0]
	dir := ""
	for _, segment := range strings.Split(target, "/") {
		if walker.IsLessonDir(segment) {
			dir = segment
		}
	}
	return dir
}

// lessonFiles lists the language variants of one lesson that actually
// exist; missing counterparts are the bilingual checker's concern.
func lessonFiles(root, lessonDir string, cfg *config.Config) []string {
	var files []string
	for _, name := range []string{cfg.PrimaryFile, cfg.SecondaryFile} {
		rel := filepath.Join(lessonDir, name)
		if fileExists(filepath.Join(root, rel)) {
			files = append(files, rel)
		}
	}
	return files
}

// ValidateNavigationCompleteness checks each lesson file for the presence
// of Module-Home, Previous and Next links, and that Previous/Next targets
// of middle lessons point at the adjacent lesson directories. Every lesson
// must carry a Previous link, the first included; only its target is
// unconstrained there. The last lesson may omit Next.
func ValidateNavigationCompleteness(root string, lessons []string, cfg *config.Config) []types.Violation {
	var violations []types.Violation

	for i, lesson := range lessons {
		for _, file := range lessonFiles(root, lesson, cfg) {
			content, v := readLessonFile(root, file)
			if v != nil {
				violations = append(violations, *v)
				continue
			}
			nav := ExtractNavigationLinks(content)

			if nav.ModuleHome == nil {
				violations = append(violations, types.Violation{
					Category: types.CategoryNavigationLink,
					Severity: types.SeverityError,
					File:     file,
					Message:  "missing Module Home navigation link",
				})
			}

			if nav.Previous == nil {
				violations = append(violations, types.Violation{
					Category: types.CategoryNavigationLink,
					Severity: types.SeverityError,
					File:     file,
					Message:  "missing Previous navigation link",
				})
			} else if i > 0 {
				if got := TargetLessonDir(nav.Previous.Target); got != lessons[i-1] {
					violations = append(violations, types.Violation{
						Category:   types.CategoryNavigationLink,
						Severity:   types.SeverityError,
						File:       file,
						LineNumber: intPtr(nav.Previous.Line),
						Message:    fmt.Sprintf("Previous link points at %q, expected %q", got, lessons[i-1]),
					})
				}
			}

			last := i == len(lessons)-1
			if nav.Next == nil {
				if !last {
					violations = append(violations, types.Violation{
						Category: types.CategoryNavigationLink,
						Severity: types.SeverityError,
						File:     file,
						Message:  "missing Next navigation link",
					})
				}
			} else if !last {
				if got := TargetLessonDir(nav.Next.Target); got != lessons[i+1] {
					violations = append(violations, types.Violation{
						Category:   types.CategoryNavigationLink,
						Severity:   types.SeverityError,
						File:       file,
						LineNumber: intPtr(nav.Next.Line),
						Message:    fmt.Sprintf("Next link points at %q, expected %q", got, lessons[i+1]),
					})
				}
			}
		}
	}

	return violations
}

// ValidateNavigationConsistency checks the symmetry invariant on each
// adjacent lesson pair: A's Next must point at B and B's Previous must
// point back at A. It is independent of the completeness check; absent
// links are only reported there.
func ValidateNavigationConsistency(root string, lessons []string, cfg *config.Config) []types.Violation {
	var violations []types.Violation

	for i := 0; i+1 < len(lessons); i++ {
		current, next := lessons[i], lessons[i+1]

		for _, file := range lessonFiles(root, current, cfg) {
			content, v := readLessonFile(root, file)
			if v != nil {
				violations = append(violations, *v)
				continue
			}
			nav := ExtractNavigationLinks(content)
			if nav.Next == nil {
				continue
			}
			if got := TargetLessonDir(nav.Next.Target); got != next {
				violations = append(violations, types.Violation{
					Category:   types.CategoryNavigationConsistency,
					Severity:   types.SeverityError,
					File:       file,
					LineNumber: intPtr(nav.Next.Line),
					Message:    fmt.Sprintf("Next link of %s points at %q but the following lesson is %q", current, got, next),
				})
			}
		}

		for _, file := range lessonFiles(root, next, cfg) {
			content, v := readLessonFile(root, file)
			if v != nil {
				violations = append(violations, *v)
				continue
			}
			nav := ExtractNavigationLinks(content)
			if nav.Previous == nil {
				continue
			}
			if got := TargetLessonDir(nav.Previous.Target); got != current {
				violations = append(violations, types.Violation{
					Category:   types.CategoryNavigationConsistency,
					Severity:   types.SeverityError,
					File:       file,
					LineNumber: intPtr(nav.Previous.Line),
					Message:    fmt.Sprintf("Previous link of %s points at %q but the preceding lesson is %q", next, got, current),
				})
			}
		}
	}

	return violations
}
