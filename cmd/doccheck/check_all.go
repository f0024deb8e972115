package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/curriculum-lint/internal/validation"
)

var checkAllCmd = &cobra.Command{
	Use:   "check-all [root]",
	Short: "Run every checker and merge the results",
	Long:  "Runs the structure, content, navigation and formatting checkers over the module root and produces one merged report.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckAll,
}

func init() {
	rootCmd.AddCommand(checkAllCmd)
}

func runCheckAll(_ *cobra.Command, args []string) error {
	cfg, root, err := loadSetup(args)
	if err != nil {
		return err
	}

	report, err := validation.ValidateAll(context.Background(), root, cfg)
	if err != nil {
		return err
	}
	return finish(report)
}
