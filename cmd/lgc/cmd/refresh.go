package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trigger a tracked-listing refresh",
		Long: "Re-fetches and re-grades every enabled tracked listing, creates\n" +
			"grade-drop alerts, and dispatches pending notifications.",
		Example: `  lgc refresh`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.Refresh(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("Refreshed %d listings (%d failed, %d skipped), %d alerts created.\n",
				resp.Refreshed, resp.Failed, resp.Skipped, resp.AlertsCreated)
			return nil
		},
	}
}
