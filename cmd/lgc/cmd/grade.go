package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func gradeCmd() *cobra.Command {
	gradeRoot := &cobra.Command{
		Use:   "grade <etsy_listing_id>",
		Short: "Fetch and grade an Etsy listing",
		Long: "Fetches the listing from the Etsy API, stores the snapshot, grades it\n" +
			"against the SEO rubric, and prints the result.",
		Args: cobra.ExactArgs(1),
		Example: `  lgc grade 1234567890
  lgc grade 1234567890 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			grade, err := c.GradeListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(grade)
			}

			return printGrade(grade)
		},
	}

	gradeRoot.AddCommand(gradeBulkCmd())

	return gradeRoot
}

func gradeBulkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk <etsy_listing_id>...",
		Short: "Grade multiple Etsy listings",
		Args:  cobra.MinimumNArgs(1),
		Example: `  lgc grade bulk 1234567890 1234567891 1234567892`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.BulkGrade(context.Background(), args)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			for i := range resp.Graded {
				fmt.Printf("%s\t%d\t%s\n",
					resp.Graded[i].EtsyListingID,
					resp.Graded[i].Score,
					resp.Graded[i].Overall,
				)
			}
			for _, id := range resp.Failed {
				fmt.Printf("%s\tfailed\n", id)
			}
			return nil
		},
	}
}
