// Package main implements the doccheck CLI for validating the structure of
// a bilingual Markdown curriculum module.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "doccheck",
	Short:         "Documentation structure validator",
	Long:          "doccheck validates a bilingual Markdown curriculum tree: lesson directory naming, bilingual file pairing, parallel heading structure, cross-language links, required sections, navigation links and Markdown formatting.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	outputPath string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "out", "o", "", "Path to output report JSON file (optional)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
