package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/config"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/presentation"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

var titleCaser = cases.Title(language.English)

// humanize turns an identifier like "mining_power_at_least" into "Mining Power At Least"
func humanize(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// loadCatalog resolves the catalog from the flag, then CATALOG_PATH, then the default
func loadCatalog(opts *rootOptions, cfg *config.Config) (*catalog.Catalog, error) {
	path := opts.catalogPath
	if path == "" && cfg != nil {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func printSummary(w io.Writer, st *domain.EconomyState) {
	fmt.Fprintf(w, "Balance:      %s\n", presentation.FormatAmount(st.Balance))
	fmt.Fprintf(w, "Mining power: %s\n", presentation.FormatRate(st.MiningPower))
	fmt.Fprintf(w, "Total mined:  %s\n", presentation.FormatAmount(st.TotalMined))
	fmt.Fprintf(w, "Last update:  %s\n", st.LastUpdate.Format("2006-01-02 15:04:05 MST"))
}

func printUnits(w io.Writer, prices []economy.UnitPrice) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Unit", "Count", "Level", "Power", "Buy", "Upgrade"}),
	)
	for _, p := range prices {
		table.Append([]string{
			fmt.Sprintf("%d", p.UnitID),
			p.Name,
			fmt.Sprintf("%d", p.Count),
			fmt.Sprintf("%d", p.Level),
			presentation.FormatRate(p.BasePower * float64(p.Count*p.Level)),
			presentation.FormatAmount(p.PurchasePrice),
			presentation.FormatAmount(p.UpgradePrice),
		})
	}
	table.Render()
}

func printAchievements(w io.Writer, defs []domain.AchievementDefinition, unlocked map[string]bool) {
	header := []string{"ID", "Name", "Kind", "Threshold"}
	if unlocked != nil {
		header = append(header, "Unlocked")
	}
	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))
	for _, a := range defs {
		row := []string{a.ID, a.Name, humanize(string(a.Kind)), fmt.Sprintf("%g", a.Threshold)}
		if unlocked != nil {
			mark := "no"
			if unlocked[a.ID] {
				mark = "yes"
			}
			row = append(row, mark)
		}
		table.Append(row)
	}
	table.Render()
}
