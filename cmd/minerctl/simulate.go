package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/clock"
	"github.com/osse101/MinerTapper_Go/internal/config"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
)

// simulateOptions drive an offline run against a simulated clock
type simulateOptions struct {
	duration time.Duration
	step     time.Duration
	balance  float64
	greedy   bool
}

// simulationResult summarises an offline run
type simulationResult struct {
	State     *domain.EconomyState
	Prices    []economy.UnitPrice
	Ticks     int
	Purchases int
	Unlocked  []unlockAt
}

type unlockAt struct {
	Achievement domain.AchievementDefinition
	After       time.Duration
}

var errInvalidStep = errors.New("step must be positive")

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	sim := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the economy offline on a simulated clock",
		Long: `Runs the real accrual, purchase and achievement rules against a simulated
clock, without touching the saved state. With --greedy the cheapest
affordable unit is bought after every tick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := config.Load()
			cat, err := loadCatalog(opts, cfg)
			if err != nil {
				return err
			}
			res, err := runSimulation(cmd.Context(), cat, sim)
			if err != nil {
				return err
			}
			printSimulation(cmd.OutOrStdout(), sim, res)
			return nil
		},
	}
	cmd.Flags().DurationVar(&sim.duration, "duration", time.Hour, "simulated time to run")
	cmd.Flags().DurationVar(&sim.step, "step", 0, "simulated time per tick (default: catalog tick interval)")
	cmd.Flags().Float64Var(&sim.balance, "balance", 0, "starting balance")
	cmd.Flags().BoolVar(&sim.greedy, "greedy", false, "buy the cheapest affordable unit after every tick")
	return cmd
}

func runSimulation(ctx context.Context, cat *catalog.Catalog, opts simulateOptions) (simulationResult, error) {
	step := opts.step
	if step == 0 {
		step = cat.TickInterval()
	}
	if step <= 0 {
		return simulationResult{}, errInvalidStep
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewSimulatedClock(start)
	st := cat.NewState(start)
	st.Balance = opts.balance
	svc := economy.NewService(cat, st, clk, nil, nil)

	var res simulationResult
	seen := make(map[string]bool, len(cat.Achievements))
	for elapsed := time.Duration(0); elapsed+step <= opts.duration; elapsed += step {
		clk.Advance(step)
		svc.Tick(ctx)
		res.Ticks++

		if opts.greedy {
			for buyCheapest(ctx, svc) {
				res.Purchases++
			}
		}

		// Purchases unlock achievements too, so diff the flags rather than
		// relying on the tick result alone
		snap := svc.Snapshot()
		for _, a := range cat.Achievements {
			if snap.Achievements[a.ID] && !seen[a.ID] {
				seen[a.ID] = true
				res.Unlocked = append(res.Unlocked, unlockAt{Achievement: a, After: elapsed + step})
			}
		}
	}

	res.State = svc.Snapshot()
	res.Prices = svc.Prices()
	return res, nil
}

// buyCheapest buys the cheapest affordable unit and reports whether it did
func buyCheapest(ctx context.Context, svc economy.Service) bool {
	balance := svc.Snapshot().Balance
	best := -1
	bestPrice := 0.0
	for _, p := range svc.Prices() {
		if p.PurchasePrice <= balance && (best < 0 || p.PurchasePrice < bestPrice) {
			best, bestPrice = p.UnitID, p.PurchasePrice
		}
	}
	if best < 0 {
		return false
	}
	_, err := svc.BuyUnit(ctx, best)
	return err == nil
}

func printSimulation(w io.Writer, opts simulateOptions, res simulationResult) {
	titleColor.Fprintf(w, "Simulated %s in %d ticks\n", opts.duration, res.Ticks)
	printSummary(w, res.State)
	fmt.Fprintf(w, "Purchases:    %d\n\n", res.Purchases)
	printUnits(w, res.Prices)

	if len(res.Unlocked) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, u := range res.Unlocked {
		successColor.Fprintf(w, "%s %s unlocked after %s\n", u.Achievement.Icon, u.Achievement.Name, u.After)
	}
}
