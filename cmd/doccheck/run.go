package main

import (
	"fmt"
	"os"

	"github.com/jonathan/curriculum-lint/internal/config"
	"github.com/jonathan/curriculum-lint/internal/report"
	"github.com/jonathan/curriculum-lint/internal/schemas"
	"github.com/jonathan/curriculum-lint/internal/types"
	"github.com/jonathan/curriculum-lint/internal/validation"
)

// loadSetup resolves the configuration and module root for one checker
// invocation. The root comes from the positional argument, then the
// DOCCHECK_ROOT environment variable, then the config default.
func loadSetup(args []string) (*config.Config, string, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	return cfg, cfg.ResolveRoot(arg), nil
}

// buildReport wraps a violation list in a report. checked is the number of
// files the invoked checker actually examined, which each runner reports.
func buildReport(root string, checked int, violations []types.Violation) *types.Report {
	r := types.NewReport(root)
	r.FilesChecked = checked
	r.Add(validation.SortViolations(violations)...)
	return r
}

// finish prints the report, writes the optional JSON artifact, and returns
// an error when the run found error-severity violations so the process
// exits non-zero.
func finish(r *types.Report) error {
	report.Print(os.Stdout, r)

	if outputPath != "" {
		if err := report.WriteJSON(outputPath, r); err != nil {
			return err
		}
		// Validate the artifact against the schema (non-fatal).
		if schemaPath := schemas.ResolveSchemaPath(schemas.ReportSchema); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: report does not validate against schema: %v\n", err)
			}
		}
	}

	if !r.Passed() {
		return fmt.Errorf("validation found %d error(s)", r.ErrorCount())
	}
	return nil
}
