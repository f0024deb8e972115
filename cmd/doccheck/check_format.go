package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/curriculum-lint/internal/validation"
)

var checkFormatCmd = &cobra.Command{
	Use:   "check-format [root]",
	Short: "Validate Markdown formatting rules",
	Long:  "Checks heading-level continuity, code-fence correctness and language tags, and list-marker conventions in every Markdown file under the root.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckFormat,
}

func init() {
	rootCmd.AddCommand(checkFormatCmd)
}

func runCheckFormat(_ *cobra.Command, args []string) error {
	cfg, root, err := loadSetup(args)
	if err != nil {
		return err
	}

	violations, checked, err := validation.RunFormat(context.Background(), root, cfg)
	if err != nil {
		return err
	}
	return finish(buildReport(root, checked, violations))
}
