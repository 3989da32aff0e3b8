package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func shopsCmd() *cobra.Command {
	shopsRoot := &cobra.Command{
		Use:   "shops",
		Short: "Analyze Etsy shops",
	}

	healthCmd := &cobra.Command{
		Use:   "health <shop_id>",
		Short: "Score a shop's overall health",
		Args:  cobra.ExactArgs(1),
		Example: `  lgc shops health 987654
  lgc shops health 987654 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			health, err := c.GetShopHealth(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(health)
			}

			return printShopHealth(health)
		},
	}

	var competitorIDs []string

	compareCmd := &cobra.Command{
		Use:   "compare <shop_id>",
		Short: "Compare a shop against benchmarks and competitors",
		Args:  cobra.ExactArgs(1),
		Example: `  lgc shops compare 987654 --competitor 111111 --competitor 222222`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			cmp, err := c.CompareShop(context.Background(), args[0], competitorIDs)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmp)
			}

			return printComparison(cmp)
		},
	}
	compareCmd.Flags().
		StringArrayVar(&competitorIDs, "competitor", nil, "competitor shop ID (repeatable)")

	var (
		searchLimit  int
		searchOffset int
	)

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Etsy shops by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.SearchShops(context.Background(), args[0], searchLimit, searchOffset)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Shops) == 0 {
				fmt.Println("No shops found.")
				return nil
			}

			fmt.Printf("Showing %d of %d shops\n\n", len(resp.Shops), resp.Total)
			return printShopsTable(resp.Shops)
		},
	}
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "result offset")

	shopsRoot.AddCommand(healthCmd, compareCmd, searchCmd)

	return shopsRoot
}

func pricingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing <etsy_listing_id>",
		Short: "Get a smart price suggestion",
		Args:  cobra.ExactArgs(1),
		Example: `  lgc pricing 1234567890`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			s, err := c.SuggestPrice(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			fmt.Printf("Current:\t$%.2f\n", s.CurrentPrice)
			fmt.Printf("Suggested:\t$%.2f\n", s.SuggestedPrice)
			fmt.Printf("Reason:\t%s\n", s.Reason)
			return nil
		},
	}
}
