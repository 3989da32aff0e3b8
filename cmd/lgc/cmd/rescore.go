package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func rescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rescore",
		Short:   "Re-grade all stored listings",
		Long:    "Recalculates SEO grades for every stored listing snapshot using the current rubric weights.",
		Example: `  lgc rescore`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			rescored, err := c.Rescore(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Rescored %d listings.\n", rescored)
			return nil
		},
	}
}
