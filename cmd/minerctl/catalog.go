package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/config"
	"github.com/osse101/MinerTapper_Go/internal/presentation"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print unit and achievement definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := config.Load()
			cat, err := loadCatalog(opts, cfg)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	titleColor.Fprintf(w, "Catalog %s\n", cat.Version)
	fmt.Fprintf(w, "Tick interval: %s, coin animation cooldown: %s\n", cat.TickInterval(), cat.AnimationCooldown())
	fmt.Fprintf(w, "Initial mining power: %s\n\n", presentation.FormatRate(cat.InitialMiningPower))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Unit", "Base power", "Base price"}),
	)
	for _, u := range cat.Units {
		table.Append([]string{
			fmt.Sprintf("%d", u.ID),
			u.Name,
			presentation.FormatRate(u.BasePower),
			fmt.Sprintf(presentation.PriceFormat, u.BasePrice),
		})
	}
	table.Render()

	fmt.Fprintln(w)
	printAchievements(w, cat.Achievements, nil)
}
