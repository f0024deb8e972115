package validation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/curriculum-lint/internal/config"
	"github.com/jonathan/curriculum-lint/internal/types"
	"github.com/jonathan/curriculum-lint/internal/walker"
)

// BilingualPair is one directory's default/alternate lesson file pair.
// Paths are relative to the module root.
type BilingualPair struct {
	Dir           string
	PrimaryPath   string
	SecondaryPath string
}

// ValidateLessonNaming checks every immediate subdirectory of root against
// the lesson naming convention.
func ValidateLessonNaming(root string, cfg *config.Config) ([]types.Violation, error) {
	subdirs, err := walker.ListSubdirs(root, cfg)
	if err != nil {
		return nil, err
	}

	var violations []types.Violation
	for _, name := range subdirs {
		if walker.IsLessonDir(name) {
			continue
		}
		violations = append(violations, types.Violation{
			Category: types.CategoryDirectoryNaming,
			Severity: types.SeverityError,
			File:     name,
			Message:  fmt.Sprintf("directory %q does not match the lesson naming convention (expected two digits, hyphen, lowercase hyphenated words, e.g. 01-fundamentals)", name),
		})
	}
	return violations, nil
}

// ValidateBilingualPairs checks that every directory under root containing
// one language variant of the lesson file also contains its counterpart.
// Directories with neither file are fine at this layer.
func ValidateBilingualPairs(root string, cfg *config.Config) ([]types.Violation, error) {
	dirs, err := walker.WalkDirs(root, cfg)
	if err != nil {
		return nil, err
	}

	var violations []types.Violation
	for _, dir := range dirs {
		hasPrimary := fileExists(filepath.Join(root, dir, cfg.PrimaryFile))
		hasSecondary := fileExists(filepath.Join(root, dir, cfg.SecondaryFile))

		switch {
		case hasPrimary && !hasSecondary:
			violations = append(violations, types.Violation{
				Category: types.CategoryBilingualPair,
				Severity: types.SeverityError,
				File:     filepath.Join(dir, cfg.SecondaryFile),
				Message:  fmt.Sprintf("%s exists in %s but %s is missing", cfg.PrimaryFile, dir, cfg.SecondaryFile),
			})
		case hasSecondary && !hasPrimary:
			violations = append(violations, types.Violation{
				Category: types.CategoryBilingualPair,
				Severity: types.SeverityError,
				File:     filepath.Join(dir, cfg.PrimaryFile),
				Message:  fmt.Sprintf("%s exists in %s but %s is missing", cfg.SecondaryFile, dir, cfg.PrimaryFile),
			})
		}
	}
	return violations, nil
}

// CollectPairs returns the complete bilingual pairs under root, in sorted
// directory order. Directories with only one file of the pair are reported
// by ValidateBilingualPairs and skipped here.
func CollectPairs(root string, cfg *config.Config) ([]BilingualPair, error) {
	dirs, err := walker.WalkDirs(root, cfg)
	if err != nil {
		return nil, err
	}

	var pairs []BilingualPair
	for _, dir := range dirs {
		primary := filepath.Join(dir, cfg.PrimaryFile)
		secondary := filepath.Join(dir, cfg.SecondaryFile)
		if fileExists(filepath.Join(root, primary)) && fileExists(filepath.Join(root, secondary)) {
			pairs = append(pairs, BilingualPair{
				Dir:           dir,
				PrimaryPath:   primary,
				SecondaryPath: secondary,
			})
		}
	}
	return pairs, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
