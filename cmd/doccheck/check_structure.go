package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/curriculum-lint/internal/validation"
)

var checkStructureCmd = &cobra.Command{
	Use:   "check-structure [root]",
	Short: "Validate lesson directory naming and bilingual file pairing",
	Long:  "Checks that every lesson directory follows the NN-name convention and that every directory containing one language variant of the lesson file also contains its counterpart.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheckStructure,
}

func init() {
	rootCmd.AddCommand(checkStructureCmd)
}

func runCheckStructure(_ *cobra.Command, args []string) error {
	cfg, root, err := loadSetup(args)
	if err != nil {
		return err
	}

	violations, checked, err := validation.RunStructure(root, cfg)
	if err != nil {
		return err
	}
	return finish(buildReport(root, checked, violations))
}
