package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/sellersage/listing-grader/pkg/types"
)

func trackedCmd() *cobra.Command {
	trackedRoot := &cobra.Command{
		Use:   "tracked",
		Short: "Manage tracked listings",
		Long: "Tracked listings are periodically re-graded by the scheduler. When a\n" +
			"listing's score drops below its threshold, an alert is fired.",
	}

	var enabledOnly bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked listings",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			tracked, err := c.ListTracked(context.Background(), enabledOnly)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(tracked)
			}

			if len(tracked) == 0 {
				fmt.Println("No tracked listings found.")
				return nil
			}

			return printTrackedTable(tracked)
		},
	}
	listCmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only enabled tracked listings")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show tracked listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			t, err := c.GetTracked(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(t)
			}

			return printTrackedDetail(t)
		},
	}

	var (
		addName      string
		addThreshold int
	)

	addCmd := &cobra.Command{
		Use:   "add <etsy_listing_id>",
		Short: "Track a listing",
		Args:  cobra.ExactArgs(1),
		Example: `  lgc tracked add 1234567890 --name "Moonstone ring" --threshold 70`,
		RunE: func(_ *cobra.Command, args []string) error {
			if addName == "" {
				return fmt.Errorf("--name is required")
			}

			c := newClient()
			created, err := c.CreateTracked(context.Background(), &domain.TrackedListing{
				EtsyListingID:  args[0],
				Name:           addName,
				ScoreThreshold: addThreshold,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(created)
			}

			fmt.Printf("Tracked listing created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&addName, "name", "", "display name for alerts")
	addCmd.Flags().IntVar(&addThreshold, "threshold", 70, "alert when score drops below this")

	enableCmd := &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable a tracked listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSetTrackedEnabled(args[0], true)
		},
	}

	disableCmd := &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a tracked listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSetTrackedEnabled(args[0], false)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Stop tracking a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteTracked(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Tracked listing %s removed.\n", args[0])
			return nil
		},
	}

	var alertsLimit int

	alertsCmd := &cobra.Command{
		Use:   "alerts <id>",
		Short: "Show a tracked listing's alert history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			alerts, err := c.GetAlertHistory(context.Background(), args[0], alertsLimit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(alerts)
			}

			if len(alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}

			return printAlertsTable(alerts)
		},
	}
	alertsCmd.Flags().IntVar(&alertsLimit, "limit", 20, "number of alerts")

	trackedRoot.AddCommand(listCmd, showCmd, addCmd, enableCmd, disableCmd, removeCmd, alertsCmd)

	return trackedRoot
}

func runSetTrackedEnabled(id string, enabled bool) error {
	c := newClient()
	if err := c.SetTrackedEnabled(context.Background(), id, enabled); err != nil {
		return err
	}

	action := "enabled"
	if !enabled {
		action = "disabled"
	}
	fmt.Printf("Tracked listing %s %s.\n", id, action)
	return nil
}
