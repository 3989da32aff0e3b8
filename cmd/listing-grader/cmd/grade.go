package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellersage/listing-grader/internal/config"
	"github.com/sellersage/listing-grader/pkg/grader"
	domain "github.com/sellersage/listing-grader/pkg/types"
)

func gradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grade [snapshot.json]",
		Short: "Grade a listing snapshot offline",
		Long: "Runs the SEO rubric over a listing snapshot from a JSON file (or stdin " +
			"when no file is given) and prints the grade. No database or Etsy API " +
			"access is needed.",
		Args: cobra.MaximumNArgs(1),
		RunE: runGrade,
	}
}

func init() {
	rootCmd.AddCommand(gradeCommand())
}

func runGrade(_ *cobra.Command, args []string) error {
	var data []byte
	var err error

	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var listing domain.ListingData
	if err := json.Unmarshal(data, &listing); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	// Weight overrides come from the config file when present; a missing
	// config falls back to the default rubric.
	weights := grader.DefaultWeights()
	if cfg, err := config.Load(cfgFile); err == nil {
		weights = cfg.Grading.GraderWeights()
	}

	g, err := grader.New(weights)
	if err != nil {
		return fmt.Errorf("building grader: %w", err)
	}

	grade := g.Grade(&listing)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(grade)
}
