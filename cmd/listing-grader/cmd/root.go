// Package cmd implements the CLI commands for the listing-grader server.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "listing-grader",
	Short: "Grade Etsy listings for SEO quality",
	Long: "An API-first service that grades Etsy listings against a deterministic " +
		"SEO rubric, scores shop health, compares shops against category benchmarks, " +
		"and alerts when tracked listings drop below their grade threshold.",
}

func init() {
	// A .env file supplies credentials referenced by ${VAR} expansion in
	// the YAML config. Missing files are fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
