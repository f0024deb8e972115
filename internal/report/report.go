// Package report renders validation reports for the terminal and writes
// the JSON artifact consumed by CI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"github.com/jonathan/curriculum-lint/internal/types"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	passColor    = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
)

// Print writes the human-readable report to w, grouped by category, with a
// final summary line. Color is cosmetic; the text carries all information.
func Print(w io.Writer, r *types.Report) {
	grouped := r.ByCategory()

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		violations := grouped[category]
		errs, warns := splitBySeverity(violations)
		headerColor.Fprintf(w, "%s", category)
		fmt.Fprintf(w, " (%d error(s), %d warning(s))\n", len(errs), len(warns))

		for _, v := range violations {
			printViolation(w, v)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Checked %d file(s), %d with issues, %d violation(s) (%d error(s), %d warning(s))\n",
		r.FilesChecked, r.FilesWithIssues, len(r.Violations), r.ErrorCount(), r.WarningCount())

	if r.Passed() {
		passColor.Fprintln(w, "PASSED")
	} else {
		failColor.Fprintln(w, "FAILED")
	}
}

func printViolation(w io.Writer, v types.Violation) {
	location := v.File
	if v.LineNumber != nil {
		location = fmt.Sprintf("%s:%d", v.File, *v.LineNumber)
	}
	if location == "" {
		location = "(module)"
	}

	tag := errorColor.Sprint("error")
	if v.Severity == types.SeverityWarning {
		tag = warningColor.Sprint("warning")
	}
	fmt.Fprintf(w, "  [%s] %s: %s\n", tag, location, v.Message)
}

func splitBySeverity(violations []types.Violation) (errs, warns []types.Violation) {
	for _, v := range violations {
		if v.Severity == types.SeverityError {
			errs = append(errs, v)
		} else {
			warns = append(warns, v)
		}
	}
	return errs, warns
}

// WriteJSON writes the report artifact, creating the output directory if
// needed.
func WriteJSON(path string, r *types.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
