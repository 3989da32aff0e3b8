package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sellersage/listing-grader/internal/config"
	"github.com/sellersage/listing-grader/internal/engine"
	"github.com/sellersage/listing-grader/internal/notify"
	"github.com/sellersage/listing-grader/internal/store"
	"github.com/sellersage/listing-grader/pkg/grader"
	"github.com/sellersage/listing-grader/pkg/logger"
)

func init() {
	rootCmd.AddCommand(rescoreCommand())
}

// rescoreCommand re-grades every stored listing from its persisted
// snapshot. It talks to the database directly and makes no Etsy API
// calls, so it can run while the server is down, e.g. after changing
// the rubric weights.
func rescoreCommand() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Re-grade all stored listings from their snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer st.Close()

			g, err := grader.New(cfg.Grading.GraderWeights())
			if err != nil {
				return fmt.Errorf("building grader: %w", err)
			}

			// Rescoring never fetches or alerts, so the engine runs
			// without a marketplace client or a real notifier.
			eng, err := engine.NewEngine(st, nil, g, notify.NewNoOpNotifier(slogger),
				engine.WithLogger(slogger),
			)
			if err != nil {
				return fmt.Errorf("building engine: %w", err)
			}

			rescored, err := eng.RescoreAll(ctx, batchSize)
			if err != nil {
				return fmt.Errorf("rescoring listings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rescored %d listings.\n", rescored)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 200, "listings fetched per page while rescoring")

	return cmd
}
