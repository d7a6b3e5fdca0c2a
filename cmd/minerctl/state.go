package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/MinerTapper_Go/internal/bootstrap"
	"github.com/osse101/MinerTapper_Go/internal/config"
	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/persistence"
)

func newStateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the saved economy state",
		Long: `Reads the saved economy state from the configured store. Missing or
malformed state is shown as a fresh game, exactly as the server would load it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(opts, cfg)
			if err != nil {
				return err
			}

			adapter, closeStore, err := openAdapter(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			st, err := adapter.Load(ctx, cat, time.Now())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			titleColor.Fprintf(w, "Economy state (%s store)\n", cfg.StoreDriver)
			printSummary(w, st)
			fmt.Fprintln(w)
			printUnits(w, economy.Prices(cat, st))
			fmt.Fprintln(w)
			printAchievements(w, cat.Achievements, st.Achievements)
			return nil
		},
	}
}

// openAdapter opens the configured store behind a synchronous adapter
func openAdapter(ctx context.Context, cfg *config.Config) (*persistence.Adapter, func(), error) {
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			warnColor.Printf("closing store: %v\n", err)
		}
	}
	return persistence.NewAdapter(store, nil, cfg.StoreDriver), closeStore, nil
}
