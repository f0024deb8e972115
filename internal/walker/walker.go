// Package walker enumerates documentation directories under a module root.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// LessonDirPattern is the required naming convention for lesson directories:
// a two-digit sequence prefix, a hyphen, then lowercase hyphenated words.
var LessonDirPattern = regexp.MustCompile(`^\d{2}-[a-z-]+$`)

// Excluder reports whether a directory name should be skipped during walks.
type Excluder interface {
	IsExcluded(name string) bool
}

// RootError indicates the module root itself is missing or unreadable.
// It aborts the whole run; no partial results are produced.
type RootError struct {
	Path  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot read module root %s: %v", e.Path, e.Cause)
}

func (e *RootError) Unwrap() error {
	return e.Cause
}

// IsLessonDir reports whether a directory name follows the lesson
// naming convention.
func IsLessonDir(name string) bool {
	return LessonDirPattern.MatchString(name)
}

// ListSubdirs returns the names of the immediate subdirectories of root,
// sorted, with excluded names removed.
func ListSubdirs(root string, exclude Excluder) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &RootError{Path: root, Cause: err}
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if exclude != nil && exclude.IsExcluded(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LessonDirs returns the immediate subdirectories of root that follow the
// lesson naming convention, ordered by their numeric prefix. Two-digit
// prefixes make the lexical sort equal to the numeric one.
func LessonDirs(root string, exclude Excluder) ([]string, error) {
	subdirs, err := ListSubdirs(root, exclude)
	if err != nil {
		return nil, err
	}

	var lessons []string
	for _, name := range subdirs {
		if IsLessonDir(name) {
			lessons = append(lessons, name)
		}
	}
	return lessons, nil
}

// MarkdownFiles returns every .md file under root, relative to root,
// sorted, skipping excluded directories at any depth.
func MarkdownFiles(root string, exclude Excluder) ([]string, error) {
	dirs, err := WalkDirs(root, exclude)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// WalkDirs returns every directory path under root, relative to root and
// including "." for the root itself, skipping excluded names at any depth.
// Symbolic links are not followed.
func WalkDirs(root string, exclude Excluder) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, &RootError{Path: root, Cause: err}
	}

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && exclude != nil && exclude.IsExcluded(d.Name()) {
			return filepath.SkipDir
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		dirs = append(dirs, rel)
		return nil
	})
	if err != nil {
		return nil, &RootError{Path: root, Cause: err}
	}

	sort.Strings(dirs)
	return dirs, nil
}
