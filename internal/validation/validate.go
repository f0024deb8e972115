// Package validation provides functionality to validate documentation
// structure, content parity, navigation and Markdown formatting.
package validation

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/curriculum-lint/internal/config"
	"github.com/jonathan/curriculum-lint/internal/types"
	"github.com/jonathan/curriculum-lint/internal/walker"
)

// formatWorkers bounds the formatting fan-out.
const formatWorkers = 8

// RunStructure runs the directory-level checks: lesson naming and
// bilingual pairing. The second return is the number of pair files whose
// existence the checker examined.
func RunStructure(root string, cfg *config.Config) ([]types.Violation, int, error) {
	naming, err := ValidateLessonNaming(root, cfg)
	if err != nil {
		return nil, 0, err
	}
	pairs, err := ValidateBilingualPairs(root, cfg)
	if err != nil {
		return nil, 0, err
	}
	checked, err := countPairFiles(root, cfg)
	if err != nil {
		return nil, 0, err
	}
	return SortViolations(append(naming, pairs...)), checked, nil
}

// countPairFiles counts the existing primary/secondary files across every
// walked directory.
func countPairFiles(root string, cfg *config.Config) (int, error) {
	dirs, err := walker.WalkDirs(root, cfg)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, dir := range dirs {
		for _, name := range []string{cfg.PrimaryFile, cfg.SecondaryFile} {
			if fileExists(filepath.Join(root, dir, name)) {
				n++
			}
		}
	}
	return n, nil
}

// RunContent runs the content checks: parallel heading structure and
// cross-language links on every complete bilingual pair, and required
// sections on every lesson file that exists, counterpart or not. The
// second return is the number of distinct files read.
func RunContent(root string, cfg *config.Config) ([]types.Violation, int, error) {
	pairs, err := CollectPairs(root, cfg)
	if err != nil {
		return nil, 0, err
	}
	lessons, err := walker.LessonDirs(root, cfg)
	if err != nil {
		return nil, 0, err
	}

	var files []string
	for _, lesson := range lessons {
		files = append(files, lessonFiles(root, lesson, cfg)...)
	}

	violations := ValidateParallelStructure(root, pairs)
	violations = append(violations, ValidateLanguageLinks(root, pairs, cfg)...)
	violations = append(violations, ValidateRequiredSections(root, files)...)

	checked := make(map[string]struct{})
	for _, pair := range pairs {
		checked[pair.PrimaryPath] = struct{}{}
		checked[pair.SecondaryPath] = struct{}{}
	}
	for _, file := range files {
		checked[file] = struct{}{}
	}
	return SortViolations(violations), len(checked), nil
}

// RunNavigation runs the navigation completeness and consistency checks
// over the ordered lesson sequence. The second return is the number of
// lesson files examined.
func RunNavigation(root string, cfg *config.Config) ([]types.Violation, int, error) {
	lessons, err := walker.LessonDirs(root, cfg)
	if err != nil {
		return nil, 0, err
	}

	checked := 0
	for _, lesson := range lessons {
		checked += len(lessonFiles(root, lesson, cfg))
	}

	violations := ValidateNavigationCompleteness(root, lessons, cfg)
	violations = append(violations, ValidateNavigationConsistency(root, lessons, cfg)...)
	return SortViolations(violations), checked, nil
}

// RunFormat runs the Markdown formatting checks over every Markdown file
// under root. Files are checked independently, so the work fans out across
// a bounded worker group; results are sorted to keep runs deterministic.
// The second return is the number of files examined.
func RunFormat(ctx context.Context, root string, cfg *config.Config) ([]types.Violation, int, error) {
	files, err := walker.MarkdownFiles(root, cfg)
	if err != nil {
		return nil, 0, err
	}

	var mu sync.Mutex
	var violations []types.Violation

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(formatWorkers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			content, v := readLessonFile(root, file)
			var found []types.Violation
			if v != nil {
				found = []types.Violation{*v}
			} else {
				found = ValidateFormatting(file, content)
			}
			if len(found) > 0 {
				mu.Lock()
				violations = append(violations, found...)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return SortViolations(violations), len(files), nil
}

// ValidateAll runs every checker and merges the results into one report.
func ValidateAll(ctx context.Context, root string, cfg *config.Config) (*types.Report, error) {
	report := types.NewReport(root)

	files, err := walker.MarkdownFiles(root, cfg)
	if err != nil {
		return nil, err
	}
	report.FilesChecked = len(files)

	structure, _, err := RunStructure(root, cfg)
	if err != nil {
		return nil, err
	}
	content, _, err := RunContent(root, cfg)
	if err != nil {
		return nil, err
	}
	navigation, _, err := RunNavigation(root, cfg)
	if err != nil {
		return nil, err
	}
	format, _, err := RunFormat(ctx, root, cfg)
	if err != nil {
		return nil, err
	}

	merged := structure
	merged = append(merged, content...)
	merged = append(merged, navigation...)
	merged = append(merged, format...)
	report.Add(SortViolations(merged)...)

	return report, nil
}

// SortViolations orders violations by file, line, category and message so
// repeated runs over an unmodified tree produce identical reports.
func SortViolations(violations []types.Violation) []types.Violation {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.File != b.File {
			return a.File < b.File
		}
		al, bl := 0, 0
		if a.LineNumber != nil {
			al = *a.LineNumber
		}
		if b.LineNumber != nil {
			bl = *b.LineNumber
		}
		if al != bl {
			return al < bl
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Message < b.Message
	})
	return violations
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
