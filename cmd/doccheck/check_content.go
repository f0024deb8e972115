package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/curriculum-lint/internal/validation"
)

var checkContentCmd = &cobra.Command{
	Use:   "check-content [root]",
	Short: "Validate bilingual content parity and required sections",
	Long:  "Checks that bilingual file pairs have parallel heading structures, that each file links to its counterpart, and that lesson files contain the required sections.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckContent,
}

func init() {
	rootCmd.AddCommand(checkContentCmd)
}

func runCheckContent(_ *cobra.Command, args []string) error {
	cfg, root, err := loadSetup(args)
	if err != nil {
		return err
	}

	violations, checked, err := validation.RunContent(root, cfg)
	if err != nil {
		return err
	}
	return finish(buildReport(root, checked, violations))
}
