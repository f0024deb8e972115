package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/curriculum-lint/internal/validation"
)

var checkNavigationCmd = &cobra.Command{
	Use:   "check-navigation [root]",
	Short: "Validate Previous/Next/Module-Home navigation links",
	Long:  "Checks that every lesson file carries the expected navigation links and that consecutive lessons' Previous and Next links point at each other.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckNavigation,
}

func init() {
	rootCmd.AddCommand(checkNavigationCmd)
}

func runCheckNavigation(_ *cobra.Command, args []string) error {
	cfg, root, err := loadSetup(args)
	if err != nil {
		return err
	}

	violations, checked, err := validation.RunNavigation(root, cfg)
	if err != nil {
		return err
	}
	return finish(buildReport(root, checked, violations))
}
