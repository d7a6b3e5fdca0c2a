package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/osse101/MinerTapper_Go/internal/config"
)

var errResetNotConfirmed = errors.New("refusing to reset without --yes")

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved economy state",
		Long: `Deletes the saved economy state so the next server start begins a fresh
game. Stop the server first: a running server writes its state again on
every tick and on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errResetNotConfirmed
			}
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			adapter, closeStore, err := openAdapter(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := adapter.Reset(ctx); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ Saved state removed from %s store\n", cfg.StoreDriver)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
