package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/sellersage/listing-grader/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query stored listings",
	}

	var (
		listShopID   string
		listCategory string
		listMinScore int
		listMaxScore int
		listUngraded bool
		listLimit    int
		listOffset   int
		listOrderBy  string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List listings",
		Example: `  lgc listings list --category jewelry --min-score 50
  lgc listings list --ungraded`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				ShopID:   listShopID,
				Category: listCategory,
				MinScore: listMinScore,
				MaxScore: listMaxScore,
				Ungraded: listUngraded,
				Limit:    listLimit,
				Offset:   listOffset,
				OrderBy:  listOrderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}
	listCmd.Flags().StringVar(&listShopID, "shop", "", "shop ID filter")
	listCmd.Flags().
		StringVar(&listCategory, "category", "", "category filter (jewelry, home_decor, clothing, art, craft_supplies, toys, other)")
	listCmd.Flags().IntVar(&listMinScore, "min-score", 0, "minimum score filter")
	listCmd.Flags().IntVar(&listMaxScore, "max-score", 0, "maximum score filter")
	listCmd.Flags().BoolVar(&listUngraded, "ungraded", false, "only listings never graded")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "number of results")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "result offset")
	listCmd.Flags().
		StringVar(&listOrderBy, "order-by", "", "sort order (score, price, first_seen_at)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}

	var historyLimit int

	gradesCmd := &cobra.Command{
		Use:   "grades <id>",
		Short: "Show a listing's grade history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			records, err := c.GetGradeHistory(context.Background(), args[0], historyLimit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(records)
			}

			if len(records) == 0 {
				fmt.Println("No grade records found.")
				return nil
			}

			return printGradeHistoryTable(records)
		},
	}
	gradesCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of records")

	listingsRoot.AddCommand(listCmd, showCmd, gradesCmd)

	return listingsRoot
}
