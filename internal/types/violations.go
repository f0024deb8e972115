// Package types provides type definitions for structured data used throughout the curriculum-lint system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Violation categories. Each checker tags its findings with one of these.
const (
	CategoryDirectoryNaming       = "directory-naming"
	CategoryBilingualPair         = "bilingual-pair"
	CategoryParallelStructure     = "parallel-structure"
	CategoryLanguageLink          = "language-link"
	CategoryRequiredSection       = "required-section"
	CategoryNavigationLink        = "navigation-link"
	CategoryNavigationConsistency = "navigation-consistency"
	CategoryHeadingHierarchy      = "heading-hierarchy"
	CategoryCodeBlock             = "code-block"
	CategoryListFormatting        = "list-formatting"
	CategoryFileAccess            = "file-access"
)

// Violation severities. Only error-severity violations fail a run.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single validation failure
type Violation struct {
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	File       string `json:"file,omitempty"`
	LineNumber *int   `json:"line_number,omitempty"`
	Message    string `json:"message"`
}

// Report is the full artifact produced by one checker run.
type Report struct {
	RunID           string      `json:"run_id"`
	Root            string      `json:"root"`
	GeneratedAt     time.Time   `json:"generated_at"`
	FilesChecked    int         `json:"files_checked"`
	FilesWithIssues int         `json:"files_with_issues"`
	Violations      []Violation `json:"violations"`
}

// NewReport creates an empty report for the given documentation root.
func NewReport(root string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		Violations:  []Violation{},
	}
}

// Add appends violations and updates the files-with-issues count.
func (r *Report) Add(violations ...Violation) {
	r.Violations = append(r.Violations, violations...)
	r.FilesWithIssues = r.countFilesWithIssues()
}

// ErrorCount returns the number of error-severity violations.
func (r *Report) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity violations.
func (r *Report) WarningCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Passed reports whether the run succeeded. Warnings do not fail a run.
func (r *Report) Passed() bool {
	return r.ErrorCount() == 0
}

// ByCategory groups violations by category, preserving encounter order within each group.
func (r *Report) ByCategory() map[string][]Violation {
	grouped := make(map[string][]Violation)
	for _, v := range r.Violations {
		grouped[v.Category] = append(grouped[v.Category], v)
	}
	return grouped
}

func (r *Report) countFilesWithIssues() int {
	seen := make(map[string]struct{})
	for _, v := range r.Violations {
		if v.File != "" {
			seen[v.File] = struct{}{}
		}
	}
	return len(seen)
}
